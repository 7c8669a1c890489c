package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grigorchuk/pkg/algebra"
	"github.com/matzehuels/grigorchuk/pkg/errors"
	"github.com/matzehuels/grigorchuk/pkg/word"
	"github.com/matzehuels/grigorchuk/pkg/word/expr"
)

const (
	maxDistinct = 8    // longest words distinct will enumerate
	maxOrder    = 4096 // largest order eval searches for
)

// reduceCommand creates the reduce command.
func (c *CLI) reduceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reduce WORD...",
		Short: "Cancel adjacent pairs and merge b, c, d",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				w, err := word.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, showWord(word.Reduce(w)))
			}
			return nil
		},
	}
}

// splitCommand creates the split command.
func (c *CLI) splitCommand() *cobra.Command {
	var aligned bool

	cmd := &cobra.Command{
		Use:   "split WORD",
		Short: "Show the action of a word on the two halves of the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := word.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if aligned {
				swap, left, right := word.SplitAligned(w)
				printKeyValue(out, "word", w.String())
				printKeyValue(out, "left", left)
				printKeyValue(out, "right", right)
				printKeyValue(out, "swap", strconv.FormatBool(swap))
				return nil
			}
			sp := word.Split(w)
			printKeyValue(out, "left", showWord(sp.Left))
			printKeyValue(out, "right", showWord(sp.Right))
			printKeyValue(out, "swap", strconv.FormatBool(sp.Swap))
			return nil
		},
	}

	cmd.Flags().BoolVar(&aligned, "aligned", false, "keep halves unreduced and aligned under the input")
	return cmd
}

// identityCommand creates the identity command.
func (c *CLI) identityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identity WORD [WORD]",
		Short: "Decide whether a word is the identity, or whether two words are equal",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := word.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				fmt.Fprintln(out, word.IsIdentity(w))
				return nil
			}
			v, err := word.Parse(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(out, word.SameElement(w, v))
			return nil
		},
	}
}

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode WORD",
		Short: "Print the recursive tree form of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := word.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), word.Encode(w))
			return nil
		},
	}
}

// evalCommand creates the eval command.
func (c *CLI) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate an expression such as (ab)^4 c",
		Long: `Evaluate an expression over a, b, c, d with parentheses and integer powers.

Prints the reduced word, the canonical form, a word decoded back from the
canonical handle, and the order of the element.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := expr.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return c.runEval(cmd, w)
		},
	}
}

func (c *CLI) runEval(cmd *cobra.Command, w word.Word) error {
	e := c.newEngine()
	trail := algebra.NewTrail()
	x := trail.Walk(e, w)

	decoded, err := trail.Decode(e, x)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "decode")
	}
	c.Logger.Debug("eval", "letters", len(w), "elem", x, "nodes", e.Store().Len())

	out := cmd.OutOrStdout()
	printKeyValue(out, "reduced", showWord(word.Reduce(w)))
	printKeyValue(out, "canonical", e.Format(x))
	printKeyValue(out, "decoded", showWord(word.Reduce(decoded)))
	if n, ok := e.Order(x, maxOrder); ok {
		printKeyValue(out, "order", strconv.Itoa(n))
	} else {
		printKeyValue(out, "order", fmt.Sprintf("> %d", maxOrder))
	}
	return nil
}

// distinctCommand creates the distinct command.
func (c *CLI) distinctCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distinct N",
		Short: "List one reduced word per element among words of length at most N",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 || n > maxDistinct {
				return errors.New(errors.ErrCodeInvalidInput, "N must be an integer in [0,%d], got %q", maxDistinct, args[0])
			}
			p := newProgress(c.Logger)
			words := word.Distinct(n)
			out := cmd.OutOrStdout()
			for _, w := range words {
				fmt.Fprintln(out, showWord(w))
			}
			p.done(fmt.Sprintf("Found %d distinct elements", len(words)))
			return nil
		},
	}
}
