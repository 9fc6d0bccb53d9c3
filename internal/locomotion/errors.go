package locomotion

import "errors"

var (
	ErrNoBody          = errors.New("locomotion: no physics body")
	ErrNoCaster        = errors.New("locomotion: no shape caster")
	ErrNoOrientation   = errors.New("locomotion: no orientation frame")
	ErrInvalidSettings = errors.New("locomotion: invalid settings")
)
