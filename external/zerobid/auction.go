package zerobid

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/auction"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

// GetNextPlayer asks the backend for a random available player. A 404 or an
// empty answer means the pool is exhausted.
func (c *Client) GetNextPlayer(ctx context.Context, sess account.Session, eventID string, opts player.NextOptions) (player.Player, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return player.Player{}, fmt.Errorf("%w: event id is required", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("eventId", eventID)
	if opts.Skipped {
		query.Set("skipped", "true")
	}
	if id := strings.TrimSpace(opts.PlayerID); id != "" {
		query.Set("playerId", id)
	}

	raw, err := c.getJSON(ctx, sess, "/auctions/getRandomPlayers", query, nil)
	if err != nil {
		if stderrors.Is(err, usecase.ErrNotFound) {
			return player.Player{}, fmt.Errorf("%w: event_id=%s", usecase.ErrPoolExhausted, eventID)
		}
		return player.Player{}, fmt.Errorf("get next player event_id=%s: %w", eventID, err)
	}

	item, ok, err := decodeRotationPlayer(raw)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: decode next player: %v", usecase.ErrDependencyUnavailable, err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: event_id=%s", usecase.ErrPoolExhausted, eventID)
	}
	return item, nil
}

// decodeRotationPlayer accepts a single player, a one-element list or a
// {player: ...} wrapper.
func decodeRotationPlayer(raw []byte) (player.Player, bool, error) {
	if isEmptyPayload(raw) {
		return player.Player{}, false, nil
	}

	text := strings.TrimSpace(string(raw))
	if strings.HasPrefix(text, "[") {
		var items []playerPayload
		if err := sonic.Unmarshal(raw, &items); err != nil {
			return player.Player{}, false, err
		}
		if len(items) == 0 {
			return player.Player{}, false, nil
		}
		return acceptPlayer(items[0].toDomain())
	}

	if node, err := sonic.Get(raw, "player"); err == nil && node.Exists() {
		if inner, rawErr := node.Raw(); rawErr == nil {
			raw = []byte(inner)
		}
	}

	var item playerPayload
	if err := sonic.Unmarshal(raw, &item); err != nil {
		return player.Player{}, false, err
	}
	return acceptPlayer(item.toDomain())
}

func acceptPlayer(p player.Player) (player.Player, bool, error) {
	if p.Validate() != nil {
		return player.Player{}, false, nil
	}
	return p, true, nil
}

func (c *Client) PurchasePlayer(ctx context.Context, sess account.Session, purchase auction.Purchase) error {
	body := purchaseRequest{
		AuctionID: strings.TrimSpace(purchase.AuctionID),
		PlayerID:  strings.TrimSpace(purchase.PlayerID),
		TeamID:    strings.TrimSpace(purchase.TeamID),
		SoldPrice: purchase.SoldPrice,
	}
	if body.AuctionID == "" || body.PlayerID == "" || body.TeamID == "" {
		return fmt.Errorf("%w: auction, player and team ids are required", usecase.ErrInvalidInput)
	}

	if _, err := c.postJSON(ctx, sess, "/auctions/purchase", body, nil); err != nil {
		return fmt.Errorf("purchase player_id=%s team_id=%s: %w", body.PlayerID, body.TeamID, err)
	}
	return nil
}

func (c *Client) GetTeamBudget(ctx context.Context, sess account.Session, auctionID string) (team.Board, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return team.Board{}, fmt.Errorf("%w: auction id is required", usecase.ErrInvalidInput)
	}

	var payload budgetPayload
	path := "/auctions/getTeamBudget/" + url.PathEscape(auctionID)
	if _, err := c.getJSON(ctx, sess, path, nil, &payload); err != nil {
		return team.Board{}, fmt.Errorf("get team budget auction_id=%s: %w", auctionID, err)
	}
	return payload.toDomain(auctionID), nil
}
