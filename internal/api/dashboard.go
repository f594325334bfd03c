package api

import (
	"context"

	"admindash/internal/core"
	"admindash/internal/errmsg"
	"admindash/internal/models"

	"github.com/gofiber/fiber/v3"
	"golang.org/x/sync/errgroup"
)

type partError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// overviewPart carries either the data of one dashboard section or the error
// that section failed with.
type overviewPart struct {
	Data  any        `json:"data,omitempty"`
	Error *partError `json:"error,omitempty"`
}

type overviewResponse struct {
	Stats    overviewPart `json:"stats"`
	Users    overviewPart `json:"users"`
	Projects overviewPart `json:"projects"`
	Tasks    overviewPart `json:"tasks"`
	Activity overviewPart `json:"activity"`
}

type reportRequest struct {
	Type models.ReportType `json:"type"`
	From string            `json:"from,omitempty"`
	To   string            `json:"to,omitempty"`
}

func fill(part *overviewPart, data any, err error) {
	if err != nil {
		se := errmsg.From(err)
		part.Error = &partError{StatusCode: se.StatusCode, Message: se.Message}
		return
	}
	part.Data = data
}

// statsHandler computes the dashboard counters.
// @Summary Dashboard statistics
// @Description Counts cover every record regardless of owner. The seeded system administrator is excluded from the user totals.
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 503 {object} errmsg._Transport
// @Router /dashboard/stats [get]
func (h *Handler) statsHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		stats, err := h.Services.Stats.Compute(ctx, actor)
		if err != nil {
			return err
		}
		return c.JSON(stats)
	})
}

// overviewHandler loads every dashboard section concurrently.
// @Summary Dashboard overview
// @Description Each section reports its own error, so one failing section never hides the others.
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} overviewResponse
// @Router /dashboard/overview [get]
func (h *Handler) overviewHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var (
			out overviewResponse
			g   errgroup.Group
		)

		g.Go(func() error {
			stats, err := h.Services.Stats.Compute(ctx, actor)
			fill(&out.Stats, stats, err)
			return nil
		})
		g.Go(func() error {
			users, err := h.Services.Users.List(ctx, actor, core.UserFilter{})
			fill(&out.Users, users, err)
			return nil
		})
		g.Go(func() error {
			projects, err := h.Services.Projects.List(ctx, actor, core.ProjectFilter{})
			fill(&out.Projects, projects, err)
			return nil
		})
		g.Go(func() error {
			tasks, err := h.Services.Tasks.List(ctx, actor, core.TaskFilter{})
			fill(&out.Tasks, tasks, err)
			return nil
		})
		g.Go(func() error {
			entries, err := h.Services.Activity.List(ctx, actor, 0)
			fill(&out.Activity, entries, err)
			return nil
		})

		_ = g.Wait()
		return c.JSON(out)
	})
}

// activityHandler lists the activity log, newest first.
// @Summary Activity log
// @Description Callers without view_all_activity only see their own entries.
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param limit query int false "entries, default 50, max 100"
// @Success 200 {array} models.ActivityEntry
// @Router /dashboard/activity [get]
func (h *Handler) activityHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		limit, err := queryInt(c, "limit")
		if err != nil {
			return err
		}

		entries, err := h.Services.Activity.List(ctx, actor, limit)
		if err != nil {
			return err
		}
		return c.JSON(entries)
	})
}

// reportHandler generates a summary report.
// @Summary Generate report
// @Tags Dashboard
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body reportRequest true "Report type and optional date bounds"
// @Success 200 {object} models.Report
// @Failure 400 {object} errmsg._InvalidReportType
// @Failure 403 {object} errmsg._PermissionDenied
// @Router /dashboard/reports [post]
func (h *Handler) reportHandler(c fiber.Ctx) error {
	return h.call(c, func(ctx context.Context, actor models.SessionIdentity) error {
		var body reportRequest
		if err := decode(c, &body); err != nil {
			return err
		}

		dates, err := core.ParseDateRange(body.From, body.To)
		if err != nil {
			return err
		}

		report, err := h.Services.Reports.Generate(ctx, actor, core.ReportRequest{
			Type:      body.Type,
			DateRange: dates,
		})
		if err != nil {
			return err
		}
		return c.JSON(report)
	})
}
