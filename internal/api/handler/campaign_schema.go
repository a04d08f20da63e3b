package handler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prospectio/outreach-system/internal/core/domain"
	"github.com/prospectio/outreach-system/internal/core/ports"
)

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createCampaignRequest struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	TargetRole    string    `json:"targetRole"`
	Location      string    `json:"location"`
	Seniority     string    `json:"seniority"`
	OutreachType  string    `json:"outreachType"`
	EmailTemplate string    `json:"emailTemplate,omitempty"`
}

// missingFields returns the required creation fields absent from the
// request, in declaration order.
func (r createCampaignRequest) missingFields() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "name")
	}
	if r.Description == "" {
		missing = append(missing, "description")
	}
	if r.StartDate.IsZero() {
		missing = append(missing, "startDate")
	}
	if r.EndDate.IsZero() {
		missing = append(missing, "endDate")
	}
	if r.TargetRole == "" {
		missing = append(missing, "targetRole")
	}
	if r.Location == "" {
		missing = append(missing, "location")
	}
	if r.Seniority == "" {
		missing = append(missing, "seniority")
	}
	if r.OutreachType == "" {
		missing = append(missing, "outreachType")
	}
	return missing
}

// campaignUpdateAllowList is the full set of updatable campaign fields. A
// request naming any key outside it is rejected before anything is applied.
var campaignUpdateAllowList = map[string]struct{}{
	"name":                  {},
	"description":           {},
	"startDate":             {},
	"endDate":               {},
	"targetRole":            {},
	"location":              {},
	"seniority":             {},
	"outreachType":          {},
	"status":                {},
	"linkedinSearchResults": {},
	"emailTemplate":         {},
}

// updateCampaignBody is decoded field-by-field from the raw request so that
// unknown keys can be rejected wholesale.
type updateCampaignBody map[string]json.RawMessage

// validateKeys rejects the whole update when any key falls outside the
// allow-list.
func (b updateCampaignBody) validateKeys() error {
	var invalid []string
	for key := range b {
		if _, ok := campaignUpdateAllowList[key]; !ok {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return fmt.Errorf("%w: invalid updates: %s", domain.ErrValidation, strings.Join(invalid, ", "))
	}
	return nil
}

// toInput decodes the allowed fields into a typed update input. Decoding
// failures and invalid status values reject the whole request.
func (b updateCampaignBody) toInput() (ports.UpdateCampaignInput, error) {
	var input ports.UpdateCampaignInput

	decode := func(key string, out any) error {
		raw, ok := b[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: invalid value for %s", domain.ErrValidation, key)
		}
		return nil
	}

	if err := decode("name", &input.Name); err != nil {
		return input, err
	}
	if err := decode("description", &input.Description); err != nil {
		return input, err
	}
	if err := decode("startDate", &input.StartDate); err != nil {
		return input, err
	}
	if err := decode("endDate", &input.EndDate); err != nil {
		return input, err
	}
	if err := decode("targetRole", &input.TargetRole); err != nil {
		return input, err
	}
	if err := decode("location", &input.Location); err != nil {
		return input, err
	}
	if err := decode("seniority", &input.Seniority); err != nil {
		return input, err
	}
	if err := decode("outreachType", &input.OutreachType); err != nil {
		return input, err
	}
	if err := decode("status", &input.Status); err != nil {
		return input, err
	}
	if input.Status != nil && !domain.ValidStatus(*input.Status) {
		return input, fmt.Errorf("%w: status must be one of: draft, active, paused, completed", domain.ErrValidation)
	}
	if err := decode("linkedinSearchResults", &input.LinkedinSearchResults); err != nil {
		return input, err
	}
	if err := decode("emailTemplate", &input.EmailTemplate); err != nil {
		return input, err
	}

	return input, nil
}
