package cli

func (c *RootCommand) initFlags() {
	c.PersistentFlags().StringVarP(
		&c.Options.ConfigPath,
		"config",
		"c",
		"",
		"Path to the .env configuration file",
	)
	c.PersistentFlags().StringVarP(
		&c.Options.DatasetPath,
		"dataset",
		"d",
		"",
		"Path to the books CSV file, overrides BOOKINDEX_DATASET_PATH",
	)
}
