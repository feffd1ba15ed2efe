package network

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/NIHAAL084/ultimate-ai-assistant/a2a"
	"github.com/NIHAAL084/ultimate-ai-assistant/entity"
	"github.com/NIHAAL084/ultimate-ai-assistant/errors"
	"github.com/NIHAAL084/ultimate-ai-assistant/internal/mylog"
	"github.com/samber/lo"
)

// MsgNoRemoteAgents is returned by DescribeAgents when nothing has been
// discovered yet.
const MsgNoRemoteAgents = "No remote agents available"

// Registry turns candidate addresses into a table of live connections, keyed
// by each peer's self-reported card name (not by the dial URL). It is the
// single source of truth for which peers are known.
type Registry struct {
	logger  *mylog.Logger
	timeout time.Duration

	// mu guards the two maps below. They are always written together so
	// their key sets stay identical.
	mu          sync.RWMutex
	connections map[string]Connection
	cards       map[string]*entity.AgentCard
}

func NewRegistry(logger *mylog.Logger, timeout time.Duration) *Registry {
	return &Registry{
		logger:      logger,
		timeout:     timeout,
		connections: make(map[string]Connection),
		cards:       make(map[string]*entity.AgentCard),
	}
}

// Discover probes each candidate address for an agent card and registers a
// connection for every peer that answers with a valid one. Addresses are
// attempted in the given order and are isolated from each other: an
// unreachable or misbehaving peer is logged and skipped, never aborting the
// rest. Callers inspect the registry afterwards; there is no result value.
func (r *Registry) Discover(ctx context.Context, urls []string) {
	r.logger.Info("discovering remote agents", "candidates", len(urls))

	httpClient := &http.Client{Timeout: r.timeout}
	for _, url := range urls {
		url = strings.TrimRight(strings.TrimSpace(url), "/")
		if url == "" {
			continue
		}

		card, err := a2a.NewCardResolver(httpClient, url).GetAgentCard(ctx)
		if err != nil {
			if isUnreachable(err) {
				r.logger.Warn("remote agent unreachable", "url", url, mylog.Err(err))
			} else {
				r.logger.Error("failed to discover remote agent", "url", url, mylog.Err(err))
			}
			continue
		}

		r.Register(NewRemoteConnection(card, url, r.timeout))
		r.logger.Info("connected to remote agent", "name", card.Name, "url", url)
	}

	r.logger.Info("remote agent discovery finished", "known", r.Len())
}

// Register upserts the connection under its card name. A name collision means
// the newest discovery wins; the displaced connection is closed.
func (r *Registry) Register(conn Connection) {
	card := conn.Card()

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.connections[card.Name]; ok && prev != conn {
		if err := prev.Close(); err != nil {
			r.logger.Warn("failed to close displaced connection", "name", card.Name, mylog.Err(err))
		}
	}
	r.connections[card.Name] = conn
	r.cards[card.Name] = card
}

// AgentNames returns the currently known peer names, sorted for stable
// presentation.
func (r *Registry) AgentNames() []string {
	r.mu.RLock()
	names := lo.Keys(r.connections)
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len reports how many peers are known.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.connections)
}

// GetConnection looks up the connection for a peer name.
func (r *Registry) GetConnection(name string) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conn, ok := r.connections[name]
	return conn, ok
}

// GetCard looks up the card for a peer name.
func (r *Registry) GetCard(name string) (*entity.AgentCard, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	card, ok := r.cards[name]
	return card, ok
}

// DescribeAgents renders a human-readable summary of every known peer (name,
// description, skill names), for presentation to an LLM or a user.
func (r *Registry) DescribeAgents() string {
	r.mu.RLock()
	cards := lo.Values(r.cards)
	r.mu.RUnlock()

	if len(cards) == 0 {
		return MsgNoRemoteAgents
	}

	sort.Slice(cards, func(i, j int) bool { return cards[i].Name < cards[j].Name })

	summaries := make([]string, 0, len(cards))
	for _, card := range cards {
		summary, err := json.MarshalIndent(map[string]any{
			"name":        card.Name,
			"description": card.Description,
			"skills": lo.Map(card.Skills, func(skill entity.AgentSkill, _ int) string {
				return skill.Name
			}),
		}, "", "  ")
		if err != nil {
			r.logger.Warn("failed to render agent summary", "name", card.Name, mylog.Err(err))
			continue
		}
		summaries = append(summaries, string(summary))
	}

	return strings.Join(summaries, "\n\n")
}

// CloseAll closes every connection and empties the registry. A connection
// that fails to close is logged and does not keep the rest open.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, conn := range r.connections {
		if err := conn.Close(); err != nil {
			r.logger.Warn("failed to close connection", "name", name, mylog.Err(err))
		}
	}

	clear(r.connections)
	clear(r.cards)
}

// isUnreachable distinguishes "nobody is listening there" from a peer that
// answered badly, so discovery can log the two differently.
func isUnreachable(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
