package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/timeutil"
)

// AddOptions holds the fields of a new entry.
type AddOptions struct {
	OnOptions
	Rating      float64
	Categories  []string
	Image       string
	Description string
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	AddOnArgs(cmd, &o.OnOptions)
	cmd.Flags().Float64VarP(&o.Rating, "rating", "r", entry.MaxRating,
		"Rating from 0 to 5.")
	cmd.Flags().StringSliceVarP(&o.Categories, "category", "c", nil,
		`Category of the entry, repeat or comma separate for more, example: --category=food,friends.`)
	cmd.Flags().StringVar(&o.Image, "image", "",
		"Absolute http(s) URL of the entry's image.")
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Description of the entry. Defaults to the positional arguments.")
}

// Draft builds the entry draft, resolving the date against now.
func (o *AddOptions) Draft(now time.Time) (entry.Draft, error) {
	d, err := timeutil.ParseDay(o.OnString, now)
	if err != nil {
		return entry.Draft{}, err
	}
	return entry.Draft{
		ImgURL:      o.Image,
		Rating:      o.Rating,
		Categories:  o.Categories,
		Date:        d.String(),
		Description: o.Description,
	}, nil
}
