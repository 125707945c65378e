package faceit

import "github.com/bytedance/sonic"

// entity is the read-only view shared by all typed resources. Building one
// never fails whatever fields the upstream returned.
type entity struct {
	doc Document
}

func newEntity(doc Document) entity {
	if doc == nil {
		doc = Document{}
	}
	return entity{doc: doc}
}

// Fields returns the raw decoded object behind the entity.
func (e entity) Fields() Document { return e.doc }
func (e entity) Get(key string) (any, bool) { return e.doc.Get(key) }
func (e entity) String(key string) (string, bool) { return e.doc.String(key) }
func (e entity) Float(key string) (float64, bool) { return e.doc.Float(key) }
func (e entity) Int(key string) (int64, bool) { return e.doc.Int(key) }
func (e entity) Bool(key string) (bool, bool) { return e.doc.Bool(key) }
func (e entity) Map(key string) (Document, bool) { return e.doc.Map(key) }
func (e entity) Slice(key string) ([]any, bool) { return e.doc.Slice(key) }
func (e entity) Strings(key string) ([]string, bool) { return e.doc.Strings(key) }
func (e entity) Documents(key string) ([]Document, bool) { return e.doc.Documents(key) }

func (e entity) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(map[string]any(e.doc))
}

type Player struct{ entity }

func NewPlayer(doc Document) Player { return Player{newEntity(doc)} }

func (p Player) ID() (string, bool) { return p.String("player_id") }
func (p Player) Nickname() (string, bool) { return p.String("nickname") }
func (p Player) Avatar() (string, bool) { return p.String("avatar") }
func (p Player) Country() (string, bool) { return p.String("country") }
func (p Player) Status() (string, bool) { return p.String("status") }
func (p Player) Verified() (bool, bool) { return p.Bool("verified") }

// Games lists the per-game entries (name, skill_level) of a search result.
func (p Player) Games() ([]Document, bool) { return p.Documents("games") }

type Game struct{ entity }

func NewGame(doc Document) Game { return Game{newEntity(doc)} }

func (g Game) ID() (string, bool) { return g.String("game_id") }
func (g Game) ShortLabel() (string, bool) { return g.String("short_label") }
func (g Game) LongLabel() (string, bool) { return g.String("long_label") }
func (g Game) ParentGameID() (string, bool) { return g.String("parent_game_id") }
func (g Game) Platforms() ([]string, bool) { return g.Strings("platforms") }
func (g Game) Order() (int64, bool) { return g.Int("order") }

type Organizer struct{ entity }

func NewOrganizer(doc Document) Organizer { return Organizer{newEntity(doc)} }

func (o Organizer) ID() (string, bool) { return o.String("organizer_id") }
func (o Organizer) Name() (string, bool) { return o.String("name") }
func (o Organizer) Avatar() (string, bool) { return o.String("avatar") }
func (o Organizer) Countries() ([]string, bool) { return o.Strings("countries") }
func (o Organizer) Active() (bool, bool) { return o.Bool("active") }
func (o Organizer) Partner() (bool, bool) { return o.Bool("partner") }
func (o Organizer) Games() ([]string, bool) { return o.Strings("games") }

type Team struct{ entity }

func NewTeam(doc Document) Team { return Team{newEntity(doc)} }

func (t Team) ID() (string, bool) { return t.String("team_id") }
func (t Team) Name() (string, bool) { return t.String("name") }
func (t Team) Avatar() (string, bool) { return t.String("avatar") }
func (t Team) Game() (string, bool) { return t.String("game") }
func (t Team) Verified() (bool, bool) { return t.Bool("verified") }

type Tournament struct{ entity }

func NewTournament(doc Document) Tournament { return Tournament{newEntity(doc)} }

// ID prefers competition_id, which search results use, over tournament_id.
func (t Tournament) ID() (string, bool) {
	if id, ok := t.String("competition_id"); ok {
		return id, true
	}
	return t.String("tournament_id")
}

func (t Tournament) Name() (string, bool) { return t.String("name") }

func (t Tournament) GameID() (string, bool) {
	if id, ok := t.String("game_id"); ok {
		return id, true
	}
	return t.String("game")
}

func (t Tournament) Region() (string, bool) { return t.String("region") }
func (t Tournament) Status() (string, bool) { return t.String("status") }
func (t Tournament) OrganizerID() (string, bool) { return t.String("organizer_id") }
func (t Tournament) PrizeType() (string, bool) { return t.String("prize_type") }
func (t Tournament) TotalPrize() (string, bool) { return t.String("total_prize") }
func (t Tournament) NumberOfMembers() (int64, bool) { return t.Int("number_of_members") }
func (t Tournament) StartedAt() (int64, bool) { return t.Int("started_at") }
