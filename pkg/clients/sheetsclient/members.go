package sheetsclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/jwhitfield/club-scheduler/pkg/core/model"
)

// Expected column names in the roster sheet
var memberFields = []string{
	"Unique ID",
	"Name",
	"Status",
	"Qualifications",
	"Officer role",
	"Joined date",
	"Account ID",
}

// ListMembers retrieves and parses the member roster from the configured
// spreadsheet. The Qualifications column is a comma-separated list drawn from
// "Toastmaster", "Table Topics Master", "General Evaluator", "Past President".
func (c *Client) ListMembers() ([]model.Member, error) {
	values, err := c.GetValues(c.cfg.RosterSheetID, c.cfg.RosterTab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("spreadsheet is empty")
	}

	members, err := parseMembers(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	return members, nil
}

// parseMembers converts raw spreadsheet rows into Member records
func parseMembers(raw [][]interface{}) ([]model.Member, error) {
	fieldIndexes := make(map[string]int)
	headerRow := raw[0]

	for _, field := range memberFields {
		index := -1
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && cellStr == field {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []interface{}) string {
		index, ok := fieldIndexes[field]
		if !ok || index >= len(row) {
			return ""
		}
		if str, ok := row[index].(string); ok {
			return strings.TrimSpace(str)
		}
		return ""
	}

	members := make([]model.Member, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		name := getField("Name", row)
		// Skip empty rows
		if name == "" {
			continue
		}

		status := model.MemberStatus(getField("Status", row))
		if status == "" {
			status = model.StatusActive
		}
		switch status {
		case model.StatusActive, model.StatusPossible, model.StatusUnavailable, model.StatusArchived:
		default:
			return nil, fmt.Errorf("row %d: unknown status %q", i+1, status)
		}

		joined := getField("Joined date", row)
		if joined != "" {
			if _, err := time.Parse("2006-01-02", joined); err != nil {
				return nil, fmt.Errorf("row %d: invalid joined date %q", i+1, joined)
			}
		}

		member := model.Member{
			ID:          getField("Unique ID", row),
			Name:        name,
			Status:      status,
			OfficerRole: model.OfficerRole(getField("Officer role", row)),
			JoinedDate:  joined,
			AccountID:   getField("Account ID", row),
		}

		for _, q := range strings.Split(getField("Qualifications", row), ",") {
			switch strings.TrimSpace(q) {
			case "Toastmaster":
				member.IsToastmaster = true
			case "Table Topics Master":
				member.IsTableTopicsMaster = true
			case "General Evaluator":
				member.IsGeneralEvaluator = true
			case "Past President":
				member.IsPastPresident = true
			}
		}

		members = append(members, member)
	}

	return members, nil
}
