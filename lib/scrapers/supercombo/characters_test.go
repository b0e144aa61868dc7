package supercombo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCharacterByIdRoundTrip(t *testing.T) {
	for _, character := range Characters {
		found, ok := GetCharacterById(character.Id)
		require.True(t, ok, character.Id)
		require.Equal(t, character.Id, found.Id)
		require.Equal(t, character.Name, found.Name)
	}
}

func TestGetCharacterByIdIsCaseSensitive(t *testing.T) {
	_, ok := GetCharacterById("Ryu")
	require.False(t, ok)
}

func TestGetCharacterByPattern(t *testing.T) {
	testCases := []struct {
		query    string
		expected string
		found    bool
	}{
		{query: "CHUNLI", expected: "chunli", found: true},
		{query: "chun-li", expected: "chunli", found: true},
		{query: "chun", expected: "chunli", found: true},
		{query: "chunliii", found: false},
		{query: "ryu", expected: "ryu", found: true},
		{query: "Gouki", expected: "akuma", found: true},
		{query: "gief", expected: "zangief", found: true},
		{query: "bison", expected: "mbison", found: true},
		{query: "dj", expected: "deejay", found: true},
		{query: "sim", expected: "dhalsim", found: true},
		{query: "aki", expected: "aki", found: true},
		{query: "a.k.i.", expected: "aki", found: true},
		// substrings of a pattern must not match
		{query: "ry", found: false},
		{query: "ryuken", found: false},
	}

	for _, test := range testCases {
		character, ok := GetCharacterByPattern(test.query)
		require.Equal(t, test.found, ok, test.query)
		if test.found {
			require.Equal(t, test.expected, character.Id, test.query)
		}
	}
}

func TestSuggestCharacter(t *testing.T) {
	character, similarity := SuggestCharacter("kimberley")
	require.Equal(t, "kimberly", character.Id)
	require.Greater(t, similarity, 0.8)

	character, _ = SuggestCharacter("Chun Li")
	require.Equal(t, "chunli", character.Id)
}

func TestCharacterUrls(t *testing.T) {
	require.Equal(t, "https://wiki.supercombo.gg/w/Street_Fighter_6/Ryu/Data", Ryu.FrameDataUrl())
	require.Equal(t, "https://wiki.supercombo.gg/w/Street_Fighter_6/Chun-Li/Data", ChunLi.FrameDataUrl())
	require.Equal(t, "https://wiki.supercombo.gg/w/Street_Fighter_6/Dee_Jay/Data", DeeJay.FrameDataUrl())
	require.Equal(t, "https://ultimateframedata.com/sf6/ryu", Ryu.GifDataUrl())
}
