package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidplay-cli/vidplay/filesystem"
	"github.com/vidplay-cli/vidplay/mediainfo"
	"github.com/vidplay-cli/vidplay/picker"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolP("json", "j", false, "Print the record as JSON")
	infoCmd.Flags().Bool("schema", false, "Print the JSON schema of the record and exit")

	infoCmd.SetOut(os.Stdout)
}

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Print container metadata of a video file",
	Long: `Print the format, duration, bit rate and tags of a video file.
When path is a directory, prompts for a video inside it.`,
	Args:    cobra.MaximumNArgs(1),
	Example: "  vidplay info ./holiday.mkv --json",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			reflector.Namer = func(t reflect.Type) string {
				return "mediainfo." + t.Name()
			}

			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(reflector.Reflect(&mediainfo.Output{})))
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("path is required"))
		}

		path := args[0]
		isDir, err := filesystem.API().IsDir(path)
		handleErr(err)

		if isDir {
			path, err = picker.Prompt(path)
			handleErr(err)
		}

		CheckDependencies(ffprobeDependency)

		record, err := mediainfo.NewExtractor(mediainfo.NewFFProbe()).Extract(context.Background(), path)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(record.Output()))
			return
		}

		cmd.Println(record.Pretty())
	},
}
