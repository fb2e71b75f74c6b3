package pick

// Message constants
const (
	MsgShort  = "Choose a favorite interactively"
	MsgLong   = "Pick lists the favorites found in the hosts file and lets you choose one interactively, then applies it like 'hostboi fav'."
	MsgPrompt = "Favorite"
)
