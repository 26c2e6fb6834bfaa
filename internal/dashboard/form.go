package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the edit modal's input.
type Form struct {
	HeartRate int     `validate:"gte=1,lte=250"`
	Steps     int     `validate:"gte=0,lte=100000"`
	Calories  int     `validate:"gte=0,lte=10000"`
	Sleep     float64 `validate:"gte=0,lte=24"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its allowed range.
func (f Form) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate form: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s must be %s %s", fe.Field(), describeTag(fe.Tag()), fe.Param()))
	}
	return fmt.Errorf("invalid health data: %s", strings.Join(msgs, "; "))
}

func describeTag(tag string) string {
	switch tag {
	case "gte":
		return "at least"
	case "lte":
		return "at most"
	default:
		return tag
	}
}

// Values returns the form as metric values.
func (f Form) Values() map[MetricID]float64 {
	return map[MetricID]float64{
		HeartRate: float64(f.HeartRate),
		Steps:     float64(f.Steps),
		Calories:  float64(f.Calories),
		Sleep:     f.Sleep,
	}
}

// ParseForm reads raw field text in display order (heart, steps, calories, sleep).
func ParseForm(fields [4]string) (Form, error) {
	var f Form
	ints := []*int{&f.HeartRate, &f.Steps, &f.Calories}
	for i, dst := range ints {
		v, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(fields[i]), ",", ""))
		if err != nil {
			return Form{}, fmt.Errorf("%s must be a whole number", All[i].Label())
		}
		*dst = v
	}
	sleep, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return Form{}, fmt.Errorf("%s must be a number", Sleep.Label())
	}
	f.Sleep = sleep
	return f, nil
}
