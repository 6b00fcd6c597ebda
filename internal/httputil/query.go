package httputil

import (
	"net/url"
	"reflect"
)

// SetFields returns the names of all fields of filter whose query parameter,
// given by the "form" tag, is present in the URL. This distinguishes
// parameters that are set to their zero value from parameters that are not
// set at all.
func SetFields(url *url.URL, filter any) []string {
	var set []string

	query := url.Query()
	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		if param := field.Tag.Get("form"); param != "" && query.Has(param) {
			set = append(set, field.Name)
		}
	}

	return set
}
