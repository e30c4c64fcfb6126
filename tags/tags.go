package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	NPC             = donburi.NewTag().SetName("NPC")
	CollisionObject = donburi.NewTag().SetName("CollisionObject")
	Transition      = donburi.NewTag().SetName("Transition")
)

// Resolv tags for collision
const (
	ResolvCollision  = "collision"
	ResolvTransition = "transition"
	ResolvCharacter  = "character"

	// Character part tags
	ResolvBody  = "body"
	ResolvHair  = "hair"
	ResolvChest = "chest"
	ResolvPants = "pants"
	ResolvShoes = "shoes"
)
