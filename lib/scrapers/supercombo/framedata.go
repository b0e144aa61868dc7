package supercombo

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCharacter = errors.New("unknown character")
var ErrUnknownMove = errors.New("unknown move")

// Move holds everything scraped from one move block. Every statistic
// is kept as the display string the wiki shows, "-" when absent.
type Move struct {
	// distinguishes same-input variants, e.g. "214P" vs "214P(charged)"
	Identifier string
	// the input notation, possibly duplicated across variants
	Input     string
	Name      string
	ImageLink string

	Damage                string
	ChipDamage            string
	DamageScaling         string
	Guard                 string
	Cancel                string
	HitconfirmWindow      string
	Startup               string
	Active                string
	Recovery              string
	Total                 string
	Hitstun               string
	Blockstun             string
	DriveDamageBlock      string
	DriveDamageHit        string
	DriveGain             string
	SuperGainHit          string
	SuperGainBlock        string
	ProjectileSpeed       string
	Invuln                string
	Armor                 string
	Airborne              string
	JuggleStart           string
	JuggleIncrease        string
	JuggleLimit           string
	PerfectParryAdvantage string
	AfterDrHit            string
	AfterDrBlock          string
	DrCancelHit           string
	DrCancelBlock         string
	PunishAdvantage       string
	HitAdvantage          string
	BlockAdvantage        string
	Notes                 string
}

// statFields is the single source of truth for the position of every
// statistic column on the wiki table. The Nth data cell fills the Nth
// entry here, whatever the column headers claim.
func (m *Move) statFields() []*string {
	return []*string{
		&m.Damage,
		&m.ChipDamage,
		&m.DamageScaling,
		&m.Guard,
		&m.Cancel,
		&m.HitconfirmWindow,
		&m.Startup,
		&m.Active,
		&m.Recovery,
		&m.Total,
		&m.Hitstun,
		&m.Blockstun,
		&m.DriveDamageBlock,
		&m.DriveDamageHit,
		&m.DriveGain,
		&m.SuperGainHit,
		&m.SuperGainBlock,
		&m.ProjectileSpeed,
		&m.Invuln,
		&m.Armor,
		&m.Airborne,
		&m.JuggleStart,
		&m.JuggleIncrease,
		&m.JuggleLimit,
		&m.PerfectParryAdvantage,
		&m.AfterDrHit,
		&m.AfterDrBlock,
		&m.DrCancelHit,
		&m.DrCancelBlock,
		&m.PunishAdvantage,
		&m.HitAdvantage,
		&m.BlockAdvantage,
		&m.Notes,
	}
}

// CharacterFrameData pairs a roster entry with its moves in page order.
type CharacterFrameData struct {
	CharacterId CharacterId
	Moves       []Move
}

// FrameData is the full catalog produced by one load run. Read-only
// after construction, safe to share across readers.
type FrameData struct {
	Characters []CharacterFrameData
}

// FindMove resolves the character by fuzzy pattern lookup, then the
// move by its identifier, ignoring case.
func (f FrameData) FindMove(characterQuery, moveQuery string) (Move, error) {
	character, ok := GetCharacterByPattern(characterQuery)
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, characterQuery)
	}
	return f.FindMoveCharacter(character, moveQuery)
}

// FindMoveCharacter finds a move by its identifier, ignoring case. A
// character can be roster-valid yet missing from the catalog when its
// load failed, which still reports ErrUnknownCharacter.
func (f FrameData) FindMoveCharacter(character CharacterId, moveQuery string) (Move, error) {
	for _, data := range f.Characters {
		if data.CharacterId.Id != character.Id {
			continue
		}
		for _, move := range data.Moves {
			if strings.EqualFold(move.Identifier, moveQuery) {
				return move, nil
			}
		}
		return Move{}, fmt.Errorf("%w: %q", ErrUnknownMove, moveQuery)
	}
	return Move{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, character.Id)
}
