package story

// defaultLevels is the built-in story: an arrest that ends in the cell.
var defaultLevels = []Level{
	{
		Title:       "level 1",
		Description: "Arrested for a bar fight.",
		Options: [2]Option{
			{Image: "1x1", Score: 1, Caption: "Talk with others"},
			{Image: "1x2", Score: -1, Caption: "Keep silent"},
		},
	},
	{
		Title:       "level 2",
		Description: "There are people next door who ask you loudly, ‘Where are you from?’.",
		Options: [2]Option{
			{Image: "2x1", Score: 1, Caption: "Talk with them"},
			{Image: "1x2", Score: -1, Caption: "Keep silent"},
		},
	},
	{
		Title:       "level 3",
		Description: "He said you killed a girl.",
		Options: [2]Option{
			{Image: "3x1", Score: 1, Caption: "Denying that"},
			{Image: "1x2", Score: -1, Caption: "Keep silent"},
		},
	},
	{
		Title:       "level 4",
		Description: "He said,‘Letme show you something.",
		Options: [2]Option{
			{Image: "4x1", Score: 1, Caption: "Close to him"},
			{Image: "1x2", Score: -1, Caption: "refused"},
		},
	},
	{
		Title:       "level 5",
		Description: "You can see his stiff face.",
		Options: [2]Option{
			{Image: "5x1", Score: 1, Caption: "shout for help"},
			{Image: "5x2", Score: -1, Caption: "hesitate"},
		},
	},
}

// Default returns the built-in five-level catalog.
func Default() Catalog {
	return NewCatalog(defaultLevels...)
}
