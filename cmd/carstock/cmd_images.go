package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// carstock image:add <car-id> <file>...
var imageAddCmd = &cobra.Command{
	Use:   "image:add <car-id> <file>...",
	Short: "Copy image files into the gallery of a car",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if _, err := app.inv.Get(id); err != nil {
			return err
		}

		// One bad file does not stop the rest; mirror the batch
		// behavior of spreadsheet import.
		for _, src := range args[1:] {
			img, err := app.gallery.Attach(id, src)
			if err != nil {
				fmt.Printf("Warning: %s not attached: %v\n", src, err)
				continue
			}
			fmt.Printf("Attached %s as [%d] %s\n", src, img.ID, img.Path)
		}
		return nil
	},
}

// carstock image:list <car-id>
var imageListCmd = &cobra.Command{
	Use:   "image:list <car-id>",
	Short: "List the gallery of a car",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		imgs, err := app.inv.Images(id)
		if err != nil {
			return err
		}
		if len(imgs) == 0 {
			fmt.Println("No images attached.")
			return nil
		}
		for _, img := range imgs {
			marker := " "
			if !app.disk.Exists(img.Path) {
				marker = "!" // row exists, file is gone
			}
			fmt.Printf("  [%d]%s %s\n", img.ID, marker, img.Path)
		}
		return nil
	},
}

// carstock image:remove <image-id>
var imageRemoveCmd = &cobra.Command{
	Use:   "image:remove <image-id>",
	Short: "Remove one gallery attachment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := app.gallery.Remove(id); err != nil {
			return err
		}
		fmt.Printf("Image %d removed.\n", id)
		return nil
	},
}

// carstock image:set-main <car-id> <image-id>
var imageSetMainCmd = &cobra.Command{
	Use:   "image:set-main <car-id> <image-id>",
	Short: "Promote a gallery attachment to the car's main image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		carID, err := parseID(args[0])
		if err != nil {
			return err
		}
		imageID, err := parseID(args[1])
		if err != nil {
			return err
		}
		if err := app.gallery.SetMain(carID, imageID); err != nil {
			return err
		}
		fmt.Println("Main image updated.")
		return nil
	},
}
