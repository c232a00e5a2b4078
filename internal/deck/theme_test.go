package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeFor(t *testing.T) {
	assert.Equal(t, ThemeLovers, ThemeFor("lovers"))
	assert.Equal(t, ThemeDefault, ThemeFor("unknown"))
	assert.Equal(t, "brainstorm", ThemeFor("brainstorm").String())
}

func TestStyles_CoverEveryTheme(t *testing.T) {
	for th := ThemeDefault; th <= ThemeMirror; th++ {
		s := th.Style()
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.AnswerAction, th.String())
		assert.NotEmpty(t, s.RevealTitle, th.String())
	}
	assert.True(t, ThemeLovers.Style().Premium)
	assert.Equal(t, "Tap to Reflect", ThemeMirror.Style().RevealTitle)
	assert.Equal(t, "default", Theme(99).String())
}
