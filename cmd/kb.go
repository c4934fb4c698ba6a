package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codeprep-ai/codeprep/internal/kb"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Manage knowledge base documents",
}

func kbClient() (*kb.Client, error) {
	c := kb.NewClientFromEnv()
	if c == nil {
		return nil, errors.New("no knowledge base configured; set CODEPREP_KB_ENDPOINT")
	}
	return c, nil
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents in the knowledge base",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := kbClient()
		if err != nil {
			return err
		}

		docs, err := c.List(context.Background())
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Println("No documents in the knowledge base.")
			return nil
		}

		fmt.Printf("%-42s  %-8s  %s\n", "File", "Type", "Status")
		fmt.Println(strings.Repeat("─", 64))
		for _, d := range docs {
			fmt.Printf("%-42s  %-8s  %s\n", d.FileName, d.FileType, d.Status)
		}
		return nil
	},
}

var kbUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document to the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := kbClient()
		if err != nil {
			return err
		}

		doc, err := c.Upload(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Uploaded %s (status %s)\n", doc.FileName, doc.Status)
		return nil
	},
}

var kbDeleteCmd = &cobra.Command{
	Use:   "delete <file-name> [file-name...]",
	Short: "Delete documents from the knowledge base by file name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := kbClient()
		if err != nil {
			return err
		}

		if err := c.Delete(context.Background(), args); err != nil {
			return err
		}
		if len(args) == 1 {
			fmt.Println("Document deleted.")
		} else {
			fmt.Printf("%d documents deleted.\n", len(args))
		}
		return nil
	},
}

func init() {
	kbCmd.AddCommand(kbListCmd)
	kbCmd.AddCommand(kbUploadCmd)
	kbCmd.AddCommand(kbDeleteCmd)
}
