// Package faceit is a client for the FACEIT open API. Single-resource calls
// return the decoded JSON object untouched; listing and search calls wrap the
// body's items into typed entities inside a Response.
package faceit

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/faceit-go/internal/platform/logging"
	"github.com/riskibarqy/faceit-go/internal/platform/resilience"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultBaseURL   = "https://open.faceit.com/"
	DefaultUserAgent = "faceit-go client"
	defaultTimeout   = 30 * time.Second

	downloadDemosPath = "download/v2/demos/download"
)

type ClientConfig struct {
	APIKey    string
	BaseURL   string        `validate:"omitempty,url"`
	UserAgent string        `validate:"omitempty,printascii"`
	// Timeout applies to the default client only; it is ignored when
	// HTTPClient is set.
	Timeout time.Duration `validate:"gte=0"`
	// HTTPClient replaces the default client and is used as supplied.
	HTTPClient     *http.Client                    `validate:"-"`
	Logger         *logging.Logger                 `validate:"-"`
	Metrics        *Metrics                        `validate:"-"`
	CircuitBreaker resilience.CircuitBreakerConfig `validate:"-"`
}

// Client is immutable once built and holds no per-call state.
type Client struct {
	transport *transport
	validate  *validator.Validate
}

func NewClient(cfg ClientConfig) (*Client, error) {
	apiKey := normalizeAPIKey(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, crerr.Wrapf(ErrInvalidConfig, "%v", err)
	}

	rawBaseURL := cfg.BaseURL
	if strings.TrimSpace(rawBaseURL) == "" {
		rawBaseURL = DefaultBaseURL
	}
	baseURL, err := validateHTTPBaseURL(rawBaseURL)
	if err != nil {
		return nil, crerr.Wrapf(ErrInvalidConfig, "base url: %v", err)
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		transport: &transport{
			httpClient:    httpClient,
			baseURL:       baseURL,
			authorization: "Bearer " + apiKey,
			userAgent:     userAgent,
			logger:        logger.Named("faceit"),
			metrics:       cfg.Metrics,
			breaker:       resilience.NewFromConfig(cfg.CircuitBreaker),
		},
		validate: validate,
	}, nil
}

// Players

func (c *Client) GetPlayer(ctx context.Context, playerID string) (Document, error) {
	if err := c.requireID("player id", playerID); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetPlayer", joinPath("players", playerID), nil, nil)
}

func (c *Client) GetPlayerByNickname(ctx context.Context, nickname string) (Document, error) {
	if err := c.requireID("nickname", nickname); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetPlayerByNickname", "players", url.Values{"nickname": {nickname}}, nil)
}

// GetPlayerHistory lists the player's matches for gameID. opts carries
// filters such as offset, limit, from and to; a "game" key in opts is sent
// next to gameID, not instead of it.
func (c *Client) GetPlayerHistory(ctx context.Context, playerID, gameID string, opts Options) (Document, error) {
	if err := c.requireID("player id", playerID); err != nil {
		return nil, err
	}
	if err := c.requireID("game id", gameID); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetPlayerHistory", joinPath("players", playerID, "history"), url.Values{"game": {gameID}}, opts)
}

func (c *Client) GetPlayerStats(ctx context.Context, playerID, gameID string) (Document, error) {
	if err := c.requireID("player id", playerID); err != nil {
		return nil, err
	}
	if err := c.requireID("game id", gameID); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetPlayerStats", joinPath("players", playerID, "stats", gameID), nil, nil)
}

// Games

// GetGames fetches one game when gameID is set and the whole game listing
// when it is blank. The two shapes differ: see GamesResult.
func (c *Client) GetGames(ctx context.Context, gameID string) (GamesResult, error) {
	if strings.TrimSpace(gameID) != "" {
		game, err := c.GetGame(ctx, gameID)
		if err != nil {
			return GamesResult{}, err
		}
		return GamesResult{game: game}, nil
	}

	games, err := c.ListGames(ctx)
	if err != nil {
		return GamesResult{}, err
	}
	return GamesResult{games: games}, nil
}

func (c *Client) GetGame(ctx context.Context, gameID string) (Document, error) {
	if err := c.requireID("game id", gameID); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetGame", joinPath("games", gameID), nil, nil)
}

func (c *Client) ListGames(ctx context.Context) (*Response[Game], error) {
	return fetchList(ctx, c, "ListGames", "games", nil, NewGame)
}

// Matches

func (c *Client) GetMatch(ctx context.Context, matchID string) (Document, error) {
	if err := c.requireID("match id", matchID); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetMatch", joinPath("matches", matchID), nil, nil)
}

func (c *Client) GetMatchStats(ctx context.Context, matchID string) (Document, error) {
	if err := c.requireID("match id", matchID); err != nil {
		return nil, err
	}
	return c.fetchDocument(ctx, "GetMatchStats", joinPath("matches", matchID, "stats"), nil, nil)
}

// Downloads

// GetDownloadURL resolves a demo resource URL (as found in a match's
// demo_url) into a signed download descriptor. It calls the download API,
// which is not under the data/v4 prefix.
func (c *Client) GetDownloadURL(ctx context.Context, resourceURL string) (Document, error) {
	if err := c.validate.Var(strings.TrimSpace(resourceURL), "required,url"); err != nil {
		return nil, crerr.Wrapf(ErrInvalidInput, "resource url %q must be an absolute url", resourceURL)
	}

	ctx, span := startOperationSpan(ctx, "GetDownloadURL")
	body, err := c.transport.post(ctx, downloadDemosPath, Options{"resource_url": resourceURL})
	var doc Document
	if err == nil {
		doc, err = asDocument(body)
	}
	endOperationSpan(span, err)
	return doc, err
}

// Searches

func (c *Client) SearchOrganizers(ctx context.Context, opts Options) (*Response[Organizer], error) {
	return fetchList(ctx, c, "SearchOrganizers", "search/organizers", opts, NewOrganizer)
}

func (c *Client) SearchPlayers(ctx context.Context, opts Options) (*Response[Player], error) {
	return fetchList(ctx, c, "SearchPlayers", "search/players", opts, NewPlayer)
}

func (c *Client) SearchTeams(ctx context.Context, opts Options) (*Response[Team], error) {
	return fetchList(ctx, c, "SearchTeams", "search/teams", opts, NewTeam)
}

func (c *Client) SearchTournaments(ctx context.Context, opts Options) (*Response[Tournament], error) {
	return fetchList(ctx, c, "SearchTournaments", "search/tournaments", opts, NewTournament)
}

func (c *Client) fetchDocument(ctx context.Context, operation, path string, query url.Values, opts Options) (Document, error) {
	ctx, span := startOperationSpan(ctx, operation)
	body, err := c.transport.getData(ctx, path, query, opts)
	var doc Document
	if err == nil {
		doc, err = asDocument(body)
	}
	endOperationSpan(span, err)
	return doc, err
}

func fetchList[T any](ctx context.Context, c *Client, operation, path string, opts Options, build func(Document) T) (*Response[T], error) {
	ctx, span := startOperationSpan(ctx, operation)
	body, err := c.transport.getData(ctx, path, nil, opts)
	var out *Response[T]
	if err == nil {
		out, err = mapItems(body, build)
	}
	endOperationSpan(span, err)
	return out, err
}

func (c *Client) requireID(name, value string) error {
	if err := c.validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return crerr.Wrapf(ErrInvalidInput, "%s is required", name)
	}
	return nil
}
