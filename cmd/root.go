/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/k1LoW/fcp/internal/copier"
	"github.com/k1LoW/fcp/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   version.Name + " <source_file> <destination_file>",
	Short: "Copy the contents of one file to another",
	Long: `fcp copies the contents of one file to another, byte-for-byte.

The destination is created if it does not exist and truncated if it does.
New destinations get mode 0644 (subject to umask).

Examples:
  fcp notes.txt backup.txt     Copy notes.txt to backup.txt
  fcp -- -weird-name copy.txt  Copy a file whose name starts with '-'

Exit status:
  0  the copy succeeded
  1  wrong arguments, or the source or destination could not be opened,
     read or written`,
	Args:          validateArgs,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       version.Version,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &copier.Error{Kind: copier.KindUsage, Err: err}
	})
}

func validateArgs(_ *cobra.Command, args []string) error {
	return copier.ValidateArgs(args)
}

func runRoot(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	if err := copier.Copy(src, dst); err != nil {
		return err
	}

	newPrinter(cmd.OutOrStdout()).Printf(color.FgGreen, "File '%s' copied to '%s' successfully.\n", src, dst)
	return nil
}

// printError reports err on w. Usage errors print the usage line; copy
// errors print what failed on which path, followed by the system cause.
func printError(w io.Writer, err error) {
	p := newPrinter(w)

	var cerr *copier.Error
	if !errors.As(err, &cerr) {
		p.Printf(color.FgRed, "Error: %v\n", err)
		return
	}

	var headline string
	switch cerr.Kind {
	case copier.KindUsage:
		p.Printf(color.FgYellow, "Usage: %s <source_file> <destination_file>\n", os.Args[0])
		return
	case copier.KindSourceOpen:
		headline = "Unable to open source file"
	case copier.KindDestinationOpen:
		headline = "Unable to open/create destination file"
	case copier.KindRead:
		headline = "Unable to read source file"
	case copier.KindWrite:
		headline = "Unable to write to destination file"
	default:
		p.Printf(color.FgRed, "Error: %v\n", err)
		return
	}

	p.Printf(color.FgRed, "Error: %s '%s'\n", headline, cerr.Path)
	// Same shape as perror(3): colored prefix, then the cause.
	p.Println(p.Paint(color.FgRed, cerr.Kind.String()) + ": " + cerr.Reason())
}
