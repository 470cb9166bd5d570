package validators

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsClock reports whether s is a 24h "HH:MM" wall clock.
func IsClock(s string) bool {
	if len(s) != len(timezone.ClockLayout) {
		return false
	}
	_, _, err := timezone.ParseClock(s)
	return err == nil
}

func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

func hhmm(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func hexColor(fl validator.FieldLevel) bool {
	return IsHexColor(fl.Field().String())
}

// Register adds the "hhmm" and "hexcolor" tags to gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("hhmm", hhmm); err != nil {
		return err
	}
	return v.RegisterValidation("hexcolor", hexColor)
}
