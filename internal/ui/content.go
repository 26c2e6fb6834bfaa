package ui

import (
	"strings"

	"healthtrack/internal/accordion"
)

type testimonial struct {
	Quote  string
	Author string
}

var testimonials = []testimonial{
	{
		Quote:  "HealthTrack Pro helped me finally understand my sleep. Seven and a half hours is now my normal.",
		Author: "Sarah J., nurse",
	},
	{
		Quote:  "Seeing my steps climb every day keeps me moving. I hit ten thousand for the first time last week!",
		Author: "Michael R., software engineer",
	},
	{
		Quote:  "The heart rate trends gave me something concrete to talk about with my doctor.",
		Author: "Linda K., retiree",
	},
}

var faqItems = []accordion.Item{
	{
		Question: "How do I update my health data?",
		Answer:   "Press e to open the update form, edit any of the four values and press enter to save.",
	},
	{
		Question: "What do the progress bars measure?",
		Answer:   "Each bar compares today's value with a daily goal: 200 bpm, 10,000 steps, 2,000 kcal and 8 hours of sleep.",
	},
	{
		Question: "Is my data stored anywhere?",
		Answer:   "No. Everything lives in this session only and is gone when you quit.",
	},
	{
		Question: "How does the memory game work?",
		Answer:   "Flip two cards per turn. Matching icons stay face up; find all eight pairs in as few moves as you can.",
	},
}

// iconLabels are the card faces for the default icon set.
var iconLabels = map[string]string{
	"heartbeat": "HRT",
	"running":   "RUN",
	"fire":      "FIR",
	"bed":       "BED",
	"apple":     "APL",
	"dumbbell":  "GYM",
	"water":     "H2O",
	"medkit":    "MED",
}

func iconLabel(icon string) string {
	if l, ok := iconLabels[icon]; ok {
		return l
	}
	l := strings.ToUpper(icon)
	if len(l) > 3 {
		l = l[:3]
	}
	return l
}
