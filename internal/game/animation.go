package game

// Clip is a named frame sequence.
type Clip struct {
	Name   string
	Frames []rune
	FPS    float64
}

// Animator plays one clip at a time from a fixed set.
type Animator struct {
	clips   map[string]Clip
	current string
	frame   int
	elapsed float64
}

// NewAnimator creates an animator playing the first clip.
func NewAnimator(clips ...Clip) *Animator {
	a := &Animator{clips: make(map[string]Clip, len(clips))}
	for _, c := range clips {
		a.clips[c.Name] = c
	}
	if len(clips) > 0 {
		a.current = clips[0].Name
	}
	return a
}

// Play switches to the named clip. Playing the current clip keeps its
// position; an unknown name is ignored.
func (a *Animator) Play(name string) {
	if name == a.current {
		return
	}
	if _, ok := a.clips[name]; !ok {
		return
	}
	a.current = name
	a.frame = 0
	a.elapsed = 0
}

// Update advances the current clip by dt seconds. Clips loop.
func (a *Animator) Update(dt float64) {
	c, ok := a.clips[a.current]
	if !ok || c.FPS <= 0 || len(c.Frames) < 2 {
		return
	}
	a.elapsed += dt
	step := 1 / c.FPS
	for a.elapsed >= step {
		a.elapsed -= step
		a.frame = (a.frame + 1) % len(c.Frames)
	}
}

// Current returns the playing clip name.
func (a *Animator) Current() string {
	return a.current
}

// Frame returns the current frame glyph.
func (a *Animator) Frame() rune {
	c := a.clips[a.current]
	if len(c.Frames) == 0 {
		return '?'
	}
	return c.Frames[a.frame]
}

// Player animation clip names.
const (
	AnimIdle      = "idle"
	AnimWalkUp    = "walk_up"
	AnimWalkDown  = "walk_down"
	AnimWalkLeft  = "walk_left"
	AnimWalkRight = "walk_right"
)

func playerClips() []Clip {
	return []Clip{
		{Name: AnimIdle, Frames: []rune{'☺', '☻'}, FPS: 2},
		{Name: AnimWalkUp, Frames: []rune{'▲', '△'}, FPS: 8},
		{Name: AnimWalkDown, Frames: []rune{'▼', '▽'}, FPS: 8},
		{Name: AnimWalkLeft, Frames: []rune{'◀', '◁'}, FPS: 8},
		{Name: AnimWalkRight, Frames: []rune{'▶', '▷'}, FPS: 8},
	}
}
