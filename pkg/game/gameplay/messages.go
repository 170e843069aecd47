package gameplay

import (
	"fmt"
)

// logMessage adds a formatted message to the game's message log. Messages
// keep their PLAYER{..} / ROOM{..} markup for the renderer.
func logMessage(g *Game, msg string, a ...any) {
	formatted := fmt.Sprintf(msg, a...)
	g.st.AddMessage(formatted)
	if g.onMessage != nil {
		g.onMessage(formatted)
	}
}
