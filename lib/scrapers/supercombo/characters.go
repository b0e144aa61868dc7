package supercombo

import (
	"fmt"
	"regexp"

	"sf6framedata/lib/textutil"

	"github.com/antzucaro/matchr"
)

// CharacterId identifies one roster entry. Two CharacterIds are the
// same character iff their Id fields are equal.
type CharacterId struct {
	// short machine key, e.g. "chunli"
	Id string
	// human display name, e.g. "Chun-Li"
	Name string
	// path segment of the character's wiki data page
	FrameDataId string
	// path segment of the character's move gif page
	GifDataId string

	regex *regexp.Regexp
}

func newCharacter(id, name, frameDataId, gifDataId, pattern string) CharacterId {
	return CharacterId{
		Id:          id,
		Name:        name,
		FrameDataId: frameDataId,
		GifDataId:   gifDataId,
		regex:       regexp.MustCompile(`(?i)^(?:` + pattern + `)$`),
	}
}

func (c CharacterId) FrameDataPath() string {
	return fmt.Sprintf("/w/Street_Fighter_6/%s/Data", c.FrameDataId)
}

func (c CharacterId) FrameDataUrl() string {
	return DefaultBaseUrl + c.FrameDataPath()
}

func (c CharacterId) GifDataUrl() string {
	return fmt.Sprintf("https://ultimateframedata.com/sf6/%s", c.GifDataId)
}

var (
	Ryu      = newCharacter("ryu", "Ryu", "Ryu", "ryu", `ryu`)
	Luke     = newCharacter("luke", "Luke", "Luke", "luke", `luke`)
	Jamie    = newCharacter("jamie", "Jamie", "Jamie", "jamie", `jamie`)
	ChunLi   = newCharacter("chunli", "Chun-Li", "Chun-Li", "chunli", `chun(-?li)?`)
	Guile    = newCharacter("guile", "Guile", "Guile", "guile", `guile`)
	Kimberly = newCharacter("kimberly", "Kimberly", "Kimberly", "kimberly", `kim(berly)?`)
	Juri     = newCharacter("juri", "Juri", "Juri", "juri", `juri`)
	Ken      = newCharacter("ken", "Ken", "Ken", "ken", `ken`)
	Blanka   = newCharacter("blanka", "Blanka", "Blanka", "blanka", `blanka`)
	Dhalsim  = newCharacter("dhalsim", "Dhalsim", "Dhalsim", "dhalsim", `(dh?al)?sim`)
	EHonda   = newCharacter("ehonda", "E.Honda", "E.Honda", "ehonda", `e?honda`)
	DeeJay   = newCharacter("deejay", "Dee Jay", "Dee_Jay", "deejay", `d(ee)?j(ay)?`)
	Manon    = newCharacter("manon", "Manon", "Manon", "manon", `manon`)
	Marisa   = newCharacter("marisa", "Marisa", "Marisa", "marisa", `marisa`)
	JP       = newCharacter("jp", "JP", "JP", "jp", `jp`)
	Zangief  = newCharacter("zangief", "Zangief", "Zangief", "zangief", `(zan)?gief`)
	Lily     = newCharacter("lily", "Lily", "Lily", "lily", `lily`)
	Cammy    = newCharacter("cammy", "Cammy", "Cammy", "cammy", `cammy`)
	Rashid   = newCharacter("rashid", "Rashid", "Rashid", "rashid", `rashid`)
	AKI      = newCharacter("aki", "A.K.I.", "A.K.I.", "aki", `a\.?k\.?i\.?`)
	Ed       = newCharacter("ed", "Ed", "Ed", "ed", `ed`)
	Akuma    = newCharacter("akuma", "Akuma", "Akuma", "akuma", `akuma|gouki`)
	MBison   = newCharacter("mbison", "M.Bison", "M.Bison", "mbison", `bison`)
)

// Characters is the fixed roster, in lookup priority order.
var Characters = []CharacterId{
	Ryu, Luke, Jamie, ChunLi, Guile, Kimberly, Juri, Ken, Blanka,
	Dhalsim, EHonda, DeeJay, Manon, Marisa, JP, Zangief, Lily, Cammy,
	Rashid, AKI, Ed, Akuma, MBison,
}

// GetCharacterById finds a roster entry by its machine key. Case sensitive.
func GetCharacterById(id string) (CharacterId, bool) {
	for _, c := range Characters {
		if c.Id == id {
			return c, true
		}
	}
	return CharacterId{}, false
}

// GetCharacterByPattern finds the first roster entry whose matching
// pattern fully matches the query, ignoring case.
func GetCharacterByPattern(query string) (CharacterId, bool) {
	for _, c := range Characters {
		if c.regex.MatchString(query) {
			return c, true
		}
	}
	return CharacterId{}, false
}

// SuggestCharacter ranks the roster against a free-text query by
// JaroWinkler similarity over the normalized machine key and display
// name, for "did you mean" feedback after a failed pattern lookup.
func SuggestCharacter(query string) (CharacterId, float64) {
	query = textutil.NormalizeName(query)

	var best CharacterId
	var similarity float64
	for _, c := range Characters {
		for _, candidate := range []string{c.Id, textutil.NormalizeName(c.Name)} {
			sim := matchr.JaroWinkler(query, candidate, false)
			if sim > similarity {
				similarity = sim
				best = c
			}
		}
	}
	return best, similarity
}
