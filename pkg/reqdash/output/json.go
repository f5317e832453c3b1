// Package output serializes dashboard data for other tools.
package output

import (
	"encoding/json"

	"github.com/ukaji3/reqdash-go/pkg/reqdash/models"
)

// ToJSON serializes v. With pretty set the output is indented by two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// DashboardToJSON serializes a dashboard view.
func DashboardToJSON(d *models.Dashboard, pretty bool) ([]byte, error) {
	return ToJSON(d, pretty)
}

// OptionsToJSON serializes option sets keyed by field name.
func OptionsToJSON(opts map[string][]any, pretty bool) ([]byte, error) {
	return ToJSON(opts, pretty)
}
