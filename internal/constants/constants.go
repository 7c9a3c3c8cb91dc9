package constants

const (
	Version = `0.1.0`

	DataDir        = `data`
	DBFile         = `data_notes.db`
	ConfigFile     = `config.ini`
	CategoriesFile = `categories.json`
	LogFile        = `vanotes.log`

	ImageDir = `images`
	ThumbDir = `images/thumbs`

	// Longest side of a generated thumbnail, in pixels.
	ThumbSize = 250

	// Rows returned per refresh when the config carries no limit.
	DefaultMaxItems = 8
)
