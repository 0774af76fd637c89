package zerobid

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/catalog"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

// TeamRepository and PlayerRepository expose the per-event listings as the
// separate domain ports they satisfy.
type TeamRepository struct {
	client *Client
}

func NewTeamRepository(client *Client) *TeamRepository {
	return &TeamRepository{client: client}
}

func (r *TeamRepository) ListByEvent(ctx context.Context, sess account.Session, eventID string) ([]team.Team, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", usecase.ErrInvalidInput)
	}

	var payload []teamPayload
	if _, err := r.client.getJSON(ctx, sess, "/teams", url.Values{"eventId": {eventID}}, &payload); err != nil {
		return nil, fmt.Errorf("list teams event_id=%s: %w", eventID, err)
	}

	out := make([]team.Team, 0, len(payload))
	for _, item := range payload {
		mapped := item.toDomain(eventID)
		if mapped.ID == "" {
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

type PlayerRepository struct {
	client *Client
}

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) ListByEvent(ctx context.Context, sess account.Session, eventID string) ([]player.Player, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", usecase.ErrInvalidInput)
	}

	var payload []playerPayload
	if _, err := r.client.getJSON(ctx, sess, "/players", url.Values{"eventId": {eventID}}, &payload); err != nil {
		return nil, fmt.Errorf("list players event_id=%s: %w", eventID, err)
	}

	out := make([]player.Player, 0, len(payload))
	for _, item := range payload {
		mapped := item.toDomain()
		if mapped.Validate() != nil {
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

func (c *Client) ListSeasons(ctx context.Context, sess account.Session) ([]catalog.Season, error) {
	var payload []seasonPayload
	if _, err := c.getJSON(ctx, sess, "/seasons", nil, &payload); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]catalog.Season, 0, len(payload))
	for _, item := range payload {
		if mapped := item.toDomain(); mapped.ID != "" {
			out = append(out, mapped)
		}
	}
	return out, nil
}

func (c *Client) ListEventsBySeason(ctx context.Context, sess account.Session, seasonID string) ([]catalog.Event, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", usecase.ErrInvalidInput)
	}

	var payload []eventPayload
	if _, err := c.getJSON(ctx, sess, "/events", url.Values{"seasonId": {seasonID}}, &payload); err != nil {
		return nil, fmt.Errorf("list events season_id=%s: %w", seasonID, err)
	}

	out := make([]catalog.Event, 0, len(payload))
	for _, item := range payload {
		if mapped := item.toDomain(seasonID); mapped.ID != "" {
			out = append(out, mapped)
		}
	}
	return out, nil
}

func (c *Client) ListPendingApprovals(ctx context.Context, sess account.Session) ([]catalog.Approval, error) {
	var payload []approvalPayload
	if _, err := c.getJSON(ctx, sess, "/approvals/pending", nil, &payload); err != nil {
		return nil, fmt.Errorf("list pending approvals: %w", err)
	}

	out := make([]catalog.Approval, 0, len(payload))
	for _, item := range payload {
		if mapped := item.toDomain(); mapped.ID != "" {
			out = append(out, mapped)
		}
	}
	return out, nil
}

// Approve accepts a pending registration. Backends that answer with only a
// message still count as success.
func (c *Client) Approve(ctx context.Context, sess account.Session, approvalID string) (catalog.Approval, error) {
	approvalID = strings.TrimSpace(approvalID)
	if approvalID == "" {
		return catalog.Approval{}, fmt.Errorf("%w: approval id is required", usecase.ErrInvalidInput)
	}

	var payload approvalPayload
	path := "/approvals/" + url.PathEscape(approvalID) + "/approve"
	if _, err := c.postJSON(ctx, sess, path, nil, &payload); err != nil {
		return catalog.Approval{}, fmt.Errorf("approve approval_id=%s: %w", approvalID, err)
	}

	out := payload.toDomain()
	if out.ID == "" {
		out.ID = approvalID
	}
	out.Status = catalog.ApprovalApproved
	return out, nil
}
