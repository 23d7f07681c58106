package components

import (
	"github.com/yohamta/donburi"

	"github.com/mossworks/burrow/collision"
)

type ColliderData struct {
	*collision.Collider
}

var Collider = donburi.NewComponentType[ColliderData]()
