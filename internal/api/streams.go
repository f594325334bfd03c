package api

import (
	"context"
	"strings"

	"admindash/internal/auth"
	"admindash/internal/backend"
	"admindash/internal/core"
	"admindash/internal/errmsg"
	"admindash/internal/models"
	"admindash/internal/session"
	"admindash/internal/utils"
	"admindash/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// sessionStreamHandler pushes the caller's session state on every change.
// @Summary Session state stream
// @Description WebSocket. Sends {"type":"session","data":{"status":...,"profile":...}} frames until the session ends. Browsers pass the token as ?authorization=.
// @Tags Streams
// @Security BearerAuth
// @Router /dashboard/ws/session [get]
func (h *Handler) sessionStreamHandler(c fiber.Ctx) error {
	token := strings.Clone(auth.BearerToken(c))

	return ws.StreamWebSocket(c, func(ctx context.Context, writer *ws.Writer) error {
		ctrl := session.New(h.Directory, h.Store, token)
		if err := ctrl.Start(ctx); err != nil {
			return err
		}
		defer ctrl.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case state, ok := <-ctrl.Changes():
				if !ok {
					return nil
				}
				if err := writer.WriteEvent("session", state); err != nil {
					return err
				}
				if state.Status == session.Unauthenticated {
					return nil
				}
			}
		}
	})
}

// collectionStreamHandler pushes live snapshots of one collection, scoped
// exactly like the matching list endpoint.
// @Summary Live collection stream
// @Description WebSocket. Sends {"type":"snapshot","collection":...,"docs":[...]} frames whenever the result set changes.
// @Tags Streams
// @Security BearerAuth
// @Param collection path string true "users, projects, tasks or activity"
// @Param projectId query string false "tasks only"
// @Failure 403 {object} errmsg._PermissionDenied
// @Router /dashboard/ws/{collection} [get]
func (h *Handler) collectionStreamHandler(c fiber.Ctx) error {
	actor, err := auth.Identity(c)
	if err != nil {
		return utils.Fail(c, err)
	}

	collection := strings.Clone(c.Params("collection"))
	q, err := streamQuery(actor, collection, strings.Clone(c.Query("projectId")))
	if err != nil {
		return utils.Fail(c, err)
	}

	return ws.StreamWebSocket(c, func(ctx context.Context, writer *ws.Writer) error {
		sub, err := h.Store.Subscribe(ctx, collection, q)
		if err != nil {
			writer.WriteStatus("error", errmsg.Transport(err).Message)
			return nil
		}
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case snap, ok := <-sub.C:
				if !ok {
					return nil
				}
				docs, err := decodeSnapshot(snap)
				if err != nil {
					return err
				}
				if err := writer.WriteSnapshot(snap.Collection, snap.At, docs); err != nil {
					return err
				}
			}
		}
	})
}

func streamQuery(actor models.SessionIdentity, collection, projectID string) (backend.Query, error) {
	switch collection {
	case models.CollectionUsers:
		return core.UserQuery(actor, core.UserFilter{})
	case models.CollectionProjects:
		return core.ProjectQuery(actor, core.ProjectFilter{}), nil
	case models.CollectionTasks:
		return core.TaskQuery(actor, core.TaskFilter{ProjectID: projectID}), nil
	case models.CollectionActivity:
		return core.ActivityQuery(actor, 0), nil
	}
	return backend.Query{}, errmsg.Validation("unknown collection " + collection)
}

func decodeSnapshot(snap backend.Snapshot) (any, error) {
	var out any
	switch snap.Collection {
	case models.CollectionUsers:
		out = &[]models.Identity{}
	case models.CollectionProjects:
		out = &[]models.Project{}
	case models.CollectionTasks:
		out = &[]models.Task{}
	case models.CollectionActivity:
		out = &[]models.ActivityEntry{}
	default:
		return snap.Docs, nil
	}

	if err := snap.Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}
