package cmd

import "github.com/google/subcommands"

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "journal")
	c.Register(&assetAddCmd{}, "journal")
	c.Register(&assetsCmd{}, "journal")
	c.Register(&showCmd{}, "journal")
	c.Register(&dashboardCmd{}, "journal")

	c.Register(&assessCmd{}, "assessments")
	c.Register(&actionCmd{}, "assessments")
	c.Register(&triggerAddCmd{}, "assessments")
	c.Register(&triggerFireCmd{}, "assessments")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")
	c.Register(&resetCmd{}, "backup")

	c.Register(&langCmd{}, "settings")
	c.Register(&configCmd{}, "settings")
}
