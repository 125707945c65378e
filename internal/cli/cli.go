// Package cli maps command-line arguments onto FACEIT client calls and prints
// each result as indented JSON.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/faceit-go/external/faceit"
	"github.com/riskibarqy/faceit-go/internal/platform/logging"
)

// ErrUsage marks argument errors; the caller prints usage and exits 2.
var ErrUsage = crerr.New("usage error")

// API is the part of *faceit.Client the commands use.
type API interface {
	GetPlayer(ctx context.Context, playerID string) (faceit.Document, error)
	GetPlayerByNickname(ctx context.Context, nickname string) (faceit.Document, error)
	GetPlayerHistory(ctx context.Context, playerID, gameID string, opts faceit.Options) (faceit.Document, error)
	GetPlayerStats(ctx context.Context, playerID, gameID string) (faceit.Document, error)
	GetGames(ctx context.Context, gameID string) (faceit.GamesResult, error)
	GetMatch(ctx context.Context, matchID string) (faceit.Document, error)
	GetMatchStats(ctx context.Context, matchID string) (faceit.Document, error)
	GetDownloadURL(ctx context.Context, resourceURL string) (faceit.Document, error)
	SearchOrganizers(ctx context.Context, opts faceit.Options) (*faceit.Response[faceit.Organizer], error)
	SearchPlayers(ctx context.Context, opts faceit.Options) (*faceit.Response[faceit.Player], error)
	SearchTeams(ctx context.Context, opts faceit.Options) (*faceit.Response[faceit.Team], error)
	SearchTournaments(ctx context.Context, opts faceit.Options) (*faceit.Response[faceit.Tournament], error)
}

var _ API = (*faceit.Client)(nil)

type Runner struct {
	api    API
	out    io.Writer
	logger *logging.Logger
}

func NewRunner(api API, out io.Writer, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{api: api, out: out, logger: logger}
}

// Run executes one command. args excludes the program name.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return crerr.Wrap(ErrUsage, "missing command")
	}

	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	rest := args[1:]
	r.logger.DebugContext(ctx, "running command", "command", cmd, "args", len(rest))

	var (
		result any
		err    error
	)
	switch cmd {
	case "player":
		if err := exactArgs(cmd, rest, 1); err != nil {
			return err
		}
		result, err = r.api.GetPlayer(ctx, rest[0])
	case "player-by-nickname":
		if err := exactArgs(cmd, rest, 1); err != nil {
			return err
		}
		result, err = r.api.GetPlayerByNickname(ctx, rest[0])
	case "player-history":
		if len(rest) < 2 {
			return crerr.Wrapf(ErrUsage, "%s requires <player_id> <game_id> [key=value...]", cmd)
		}
		opts, parseErr := ParseOptions(rest[2:])
		if parseErr != nil {
			return parseErr
		}
		result, err = r.api.GetPlayerHistory(ctx, rest[0], rest[1], opts)
	case "player-stats":
		if err := exactArgs(cmd, rest, 2); err != nil {
			return err
		}
		result, err = r.api.GetPlayerStats(ctx, rest[0], rest[1])
	case "games":
		if len(rest) > 1 {
			return crerr.Wrapf(ErrUsage, "%s takes at most one <game_id>", cmd)
		}
		gameID := ""
		if len(rest) == 1 {
			gameID = rest[0]
		}
		result, err = r.api.GetGames(ctx, gameID)
	case "match":
		if err := exactArgs(cmd, rest, 1); err != nil {
			return err
		}
		result, err = r.api.GetMatch(ctx, rest[0])
	case "match-stats":
		if err := exactArgs(cmd, rest, 1); err != nil {
			return err
		}
		result, err = r.api.GetMatchStats(ctx, rest[0])
	case "download-url":
		if err := exactArgs(cmd, rest, 1); err != nil {
			return err
		}
		result, err = r.api.GetDownloadURL(ctx, rest[0])
	case "search":
		result, err = r.search(ctx, rest)
		if crerr.Is(err, ErrUsage) {
			return err
		}
	default:
		return crerr.Wrapf(ErrUsage, "unknown command %q", args[0])
	}
	if err != nil {
		return crerr.Wrapf(err, "%s", cmd)
	}

	return r.write(result)
}

func (r *Runner) search(ctx context.Context, args []string) (any, error) {
	if len(args) == 0 {
		return nil, crerr.Wrap(ErrUsage, "search requires <organizers|players|teams|tournaments> [key=value...]")
	}
	opts, err := ParseOptions(args[1:])
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "organizers":
		return r.api.SearchOrganizers(ctx, opts)
	case "players":
		return r.api.SearchPlayers(ctx, opts)
	case "teams":
		return r.api.SearchTeams(ctx, opts)
	case "tournaments":
		return r.api.SearchTournaments(ctx, opts)
	default:
		return nil, crerr.Wrapf(ErrUsage, "unknown search kind %q", args[0])
	}
}

func (r *Runner) write(result any) error {
	encoder := sonic.ConfigStd.NewEncoder(r.out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return crerr.Wrap(err, "write result")
	}
	return nil
}

// ParseOptions turns key=value arguments into options. A repeated key is sent
// once per value.
func ParseOptions(args []string) (faceit.Options, error) {
	if len(args) == 0 {
		return nil, nil
	}

	values := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, crerr.Wrapf(ErrUsage, "invalid option %q, expected key=value", arg)
		}
		values[key] = append(values[key], value)
	}

	opts := make(faceit.Options, len(values))
	for key, vs := range values {
		if len(vs) == 1 {
			opts[key] = vs[0]
		} else {
			opts[key] = vs
		}
	}
	return opts, nil
}

func exactArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return crerr.Wrapf(ErrUsage, "%s expects %d argument(s), got %d", cmd, n, len(args))
	}
	return nil
}

// Usage writes the command summary to w.
func Usage(w io.Writer, program string) {
	fmt.Fprintf(w, "usage: %s <command> [args]\n", program)
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  player <player_id>")
	fmt.Fprintln(w, "  player-by-nickname <nickname>")
	fmt.Fprintln(w, "  player-history <player_id> <game_id> [key=value...]")
	fmt.Fprintln(w, "  player-stats <player_id> <game_id>")
	fmt.Fprintln(w, "  games [game_id]")
	fmt.Fprintln(w, "  match <match_id>")
	fmt.Fprintln(w, "  match-stats <match_id>")
	fmt.Fprintln(w, "  download-url <resource_url>")
	fmt.Fprintln(w, "  search <organizers|players|teams|tournaments> [key=value...]")
	fmt.Fprintln(w, "examples:")
	fmt.Fprintf(w, "  %s player-by-nickname s1mple\n", program)
	fmt.Fprintf(w, "  %s search players nickname=s1mple limit=5\n", program)
}
