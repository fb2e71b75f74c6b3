package apply

// Message constants
const (
	MsgShort   = "Run a swap or a favorite selection from flags"
	MsgLong    = "Apply runs exactly one of the two rewrites: --swap N behaves like 'hostboi swap N', --favorite NAME like 'hostboi fav NAME'. Giving both, or neither, is an error."
	MsgExample = `  hostboi apply --swap 3
  hostboi apply --favorite DEV51`

	MsgFlagSwap     = "Box number for the #SWAP lines"
	MsgFlagFavorite = "Favorite name to activate"

	MsgErrBoth    = "use either --swap or --favorite, not both"
	MsgErrNeither = "one of --swap or --favorite is required"
)
