package dto

import (
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var safeRefRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_ref", validateSafeRef)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
	}
}

// validateSafeRef allows alphanumeric, underscore, dash, and dot.
func validateSafeRef(fl validator.FieldLevel) bool {
	return safeRefRe.MatchString(fl.Field().String())
}

// validateSafeURL accepts only absolute http/https URLs with a host.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
