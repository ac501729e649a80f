package handler

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"dmsanalytics/internal/analytics"
)

// allOption is the selector value meaning "no constraint".
const allOption = "All"

// optional returns nil for an absent, empty or exactly "All" query parameter. Any other
// value, including "all" or one with surrounding spaces, is matched as given.
func optional(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" || v == allOption {
		return nil
	}
	v = utils.CopyString(v)
	return &v
}

// dateParams are the from/to query parameters of a date-range filter.
type dateParams struct {
	From string
	To   string
}

func (p dateParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.From,
			validation.Date(analytics.DateLayout).Error("must be a date in YYYY-MM-DD format"),
			validation.When(p.To != "", validation.Required.Error("is required when to is set")),
		),
		validation.Field(&p.To,
			validation.Date(analytics.DateLayout).Error("must be a date in YYYY-MM-DD format"),
			validation.When(p.From != "", validation.Required.Error("is required when from is set")),
		),
	)
}

// dateRange parses the from/to parameters. Both absent means no range.
func dateRange(c *fiber.Ctx) (*analytics.DateRange, error) {
	p := dateParams{From: strings.TrimSpace(c.Query("from")), To: strings.TrimSpace(c.Query("to"))}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", analytics.ErrInvalidFilter, err)
	}
	if p.From == "" {
		return nil, nil
	}

	from, _ := analytics.ParseDate(p.From)
	to, _ := analytics.ParseDate(p.To)
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", analytics.ErrInvalidFilter)
	}
	return &analytics.DateRange{From: from, To: to}, nil
}

func documentCriteria(c *fiber.Ctx) (analytics.DocumentCriteria, error) {
	created, err := dateRange(c)
	if err != nil {
		return analytics.DocumentCriteria{}, err
	}
	return analytics.DocumentCriteria{
		Status:  optional(c, "status"),
		DocType: optional(c, "type"),
		Creator: optional(c, "creator"),
		Created: created,
	}, nil
}

func userCriteria(c *fiber.Ctx) (analytics.UserCriteria, error) {
	created, err := dateRange(c)
	if err != nil {
		return analytics.UserCriteria{}, err
	}
	return analytics.UserCriteria{
		Status:     optional(c, "status"),
		Role:       optional(c, "role"),
		Department: optional(c, "department"),
		Created:    created,
	}, nil
}

func announcementCriteria(c *fiber.Ctx) (analytics.AnnouncementCriteria, error) {
	created, err := dateRange(c)
	if err != nil {
		return analytics.AnnouncementCriteria{}, err
	}
	crit := analytics.AnnouncementCriteria{
		Status:  optional(c, "status"),
		Creator: optional(c, "creator"),
		Created: created,
	}
	if v := optional(c, "visibility"); v != nil {
		vis, err := analytics.ParseVisibility(*v)
		if err != nil {
			return analytics.AnnouncementCriteria{}, err
		}
		crit.Visibility = &vis
	}
	return crit, nil
}

func notificationCriteria(c *fiber.Ctx) (analytics.NotificationCriteria, error) {
	created, err := dateRange(c)
	if err != nil {
		return analytics.NotificationCriteria{}, err
	}
	return analytics.NotificationCriteria{
		Type:    optional(c, "type"),
		Created: created,
	}, nil
}

// filterError writes the 400 response of a rejected filter.
func filterError(c *fiber.Ctx, err error) error {
	msg := "invalid filter"
	if errors.Is(err, analytics.ErrInvalidFilter) {
		msg = err.Error()
	}
	return writeError(c, fiber.StatusBadRequest, "INVALID_FILTER", msg)
}
