package game

import (
	"fmt"

	"github.com/vovakirdan/tui-textgame/internal/story"
)

// Prompt is the line shown after the cursor while a level is active.
const Prompt = "Choose your action"

// Ending image identifiers.
const (
	DiedImage     = "y1"
	SurvivedImage = "1x1"
)

// OptionView describes one tappable option.
type OptionView struct {
	Choice  story.Choice
	Image   string
	Caption string
}

// EndingView describes the ending screen.
type EndingView struct {
	Ending  Ending
	Image   string
	Caption string
}

// View is a presentation-free description of what the screen shows.
// Exactly one of Options or Ending is populated, depending on Status.
type View struct {
	Status        Status
	Title         string
	ScoreLine     string
	Description   string
	Options       []OptionView
	Ending        *EndingView
	Prompt        string
	CursorVisible bool
}

// Render maps a session to the view of its current state.
func Render(s Session, levels story.Catalog) View {
	v := View{
		Status:        s.Status(levels.Len()),
		CursorVisible: s.CursorVisible,
	}

	lvl, ok := levels.Level(s.LevelIndex)
	if !ok {
		v.Status = StatusFinished
		v.Ending = renderEnding(s.Score)
		return v
	}

	v.Title = lvl.Title
	v.ScoreLine = fmt.Sprintf("Score: %d", s.Score)
	v.Description = lvl.Description
	v.Prompt = Prompt
	v.Options = []OptionView{
		{Choice: story.ChoiceFirst, Image: lvl.Options[0].Image, Caption: lvl.Options[0].Caption},
		{Choice: story.ChoiceSecond, Image: lvl.Options[1].Image, Caption: lvl.Options[1].Caption},
	}
	return v
}

func renderEnding(score int) *EndingView {
	if EndingFor(score) == EndingDied {
		return &EndingView{
			Ending:  EndingDied,
			Image:   DiedImage,
			Caption: fmt.Sprintf("Your score: %d, You died.", score),
		}
	}
	return &EndingView{
		Ending:  EndingSurvived,
		Image:   SurvivedImage,
		Caption: fmt.Sprintf("Your score: %d, survived.", score),
	}
}
