package client

import "time"

type Key string

const (
	KeyLeftUp    Key = "w"
	KeyLeftDown  Key = "s"
	KeyRightUp   Key = "up"
	KeyRightDown Key = "down"
)

// opposite 同一支球拍反方向的鍵
var opposite = map[Key]Key{
	KeyLeftUp:    KeyLeftDown,
	KeyLeftDown:  KeyLeftUp,
	KeyRightUp:   KeyRightDown,
	KeyRightDown: KeyRightUp,
}

// KeyState 終端機沒有放開按鍵的事件，最後一次按下後hold時間內都視為按住
type KeyState struct {
	hold    time.Duration
	pressed map[Key]time.Time
}

func NewKeyState(hold time.Duration) *KeyState {
	return &KeyState{
		hold:    hold,
		pressed: make(map[Key]time.Time),
	}
}

// Press 按下某個鍵，同一支球拍的反方向鍵會立刻放開
func (k *KeyState) Press(key Key, now time.Time) {
	k.pressed[key] = now
	if o, ok := opposite[key]; ok {
		delete(k.pressed, o)
	}
}

func (k *KeyState) Pressed(key Key, now time.Time) bool {
	last, ok := k.pressed[key]
	if !ok {
		return false
	}
	if now.Sub(last) >= k.hold {
		delete(k.pressed, key)
		return false
	}
	return true
}

func (k *KeyState) Reset() {
	for key := range k.pressed {
		delete(k.pressed, key)
	}
}
