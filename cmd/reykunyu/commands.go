package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/Willem3141/navi-reykunyu-sub001/adjectives"
	"github.com/Willem3141/navi-reykunyu-sub001/conjstring"
	"github.com/Willem3141/navi-reykunyu-sub001/nouns"
	"github.com/Willem3141/navi-reykunyu-sub001/numbers"
	"github.com/Willem3141/navi-reykunyu-sub001/verbs"
)

var (
	heading = color.New(color.FgCyan, color.OpBold)
	faint   = color.New(color.FgGray)
)

// printJSON writes v as indented JSON, colored unless colors are off.
func printJSON(w io.Writer, v any, colored bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	data = pretty.Pretty(data)
	if colored {
		data = pretty.Color(data, nil)
	}
	_, err = w.Write(data)
	return err
}

// printConjugation prints a conjugation string followed by its forms.
func printConjugation(w io.Writer, conjugation string) {
	fmt.Fprintln(w, faint.Sprint(conjugation))
	for _, form := range conjstring.Expand(conjugation) {
		fmt.Fprintln(w, form)
	}
}

func splitSlots(s string, n int) ([]string, error) {
	slots := strings.Split(s, ",")
	if len(slots) != n {
		return nil, fmt.Errorf("expected %d comma-separated slots, got %d", n, len(slots))
	}
	return slots, nil
}

func newLookupCmd(o *options) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "lookup QUERY...",
		Short: "Look up words or a sentence in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.parseDialect()
			if err != nil {
				return err
			}
			r, err := o.open()
			if err != nil {
				return err
			}
			results := r.LookUp(strings.Join(args, " "), d)
			out := cmd.OutOrStdout()
			if o.json {
				return printJSON(out, results, !o.noColor)
			}
			for _, wr := range results {
				fmt.Fprintln(out, heading.Sprint(wr.Query))
				if len(wr.Results) == 0 {
					fmt.Fprint(out, "  (not found)")
					if len(wr.Suggestions) > 0 {
						fmt.Fprintf(out, " did you mean %s?", strings.Join(wr.Suggestions, ", "))
					}
					fmt.Fprintln(out)
				}
				for _, res := range wr.Results {
					fmt.Fprintf(out, "  %s %s  %s\n", res.WordRaw.In(d), faint.Sprint(res.Type.Name()), res.Translation(lang))
					for _, step := range res.Conjugated {
						fmt.Fprintf(out, "    %s\n", faint.Sprint(step.Type))
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "en", "Translation language")
	return cmd
}

func newTableCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table WORD",
		Short: "Print the conjugation table of a noun or adjective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.parseDialect()
			if err != nil {
				return err
			}
			r, err := o.open()
			if err != nil {
				return err
			}
			tables, err := r.Tables(args[0], d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.json {
				return printJSON(out, tables, !o.noColor)
			}
			for _, t := range tables {
				fmt.Fprintln(out, heading.Sprintf("%s (%s)", t.Entry.WordRaw.In(d), t.Entry.Type.Name()))
				for _, row := range t.Noun {
					fmt.Fprintln(out, "  "+strings.Join(row, "  "))
				}
				if t.Adjective != nil {
					fmt.Fprintf(out, "  %s  %s\n", t.Adjective.Prefixed, t.Adjective.Suffixed)
				}
			}
			return nil
		},
	}
}

func newNounCmd(o *options) *cobra.Command {
	var (
		affixes string
		loan    bool
	)
	cmd := &cobra.Command{
		Use:   "noun ROOT",
		Short: "Conjugate a noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.parseDialect()
			if err != nil {
				return err
			}
			slots, err := splitSlots(affixes, 7)
			if err != nil {
				return err
			}
			a, err := nouns.ParseAffixes([7]string(slots))
			if err != nil {
				return err
			}
			conjugation, err := nouns.Conjugate(args[0], a, d, loan)
			if err != nil {
				return err
			}
			printConjugation(cmd.OutOrStdout(), conjugation)
			return nil
		},
	}
	cmd.Flags().StringVar(&affixes, "affixes", ",,,,,,", "Seven comma-separated affix slots")
	cmd.Flags().BoolVar(&loan, "loan", false, "Treat the noun as a loanword")
	return cmd
}

func newVerbCmd(o *options) *cobra.Command {
	var infixes string
	cmd := &cobra.Command{
		Use:   "verb TEMPLATE",
		Short: "Conjugate a verb given its infix template, like t.ar.on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := verbs.ParseTemplate(args[0])
			if err != nil {
				return err
			}
			slots, err := splitSlots(infixes, 3)
			if err != nil {
				return err
			}
			in, err := verbs.ParseInfixes([3]string(slots))
			if err != nil {
				return err
			}
			conjugation, err := verbs.Conjugate(t, in)
			if err != nil {
				return err
			}
			printConjugation(cmd.OutOrStdout(), conjugation)
			return nil
		},
	}
	cmd.Flags().StringVar(&infixes, "infixes", ",,", "Three comma-separated infix slots")
	return cmd
}

func newAdjectiveCmd(o *options) *cobra.Command {
	var (
		form string
		le   bool
	)
	cmd := &cobra.Command{
		Use:     "adj ROOT",
		Aliases: []string{"adjective"},
		Short:   "Conjugate an adjective",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := o.parseDialect()
			if err != nil {
				return err
			}
			f, err := adjectives.ParseForm(form)
			if err != nil {
				return err
			}
			conjugation, ok := adjectives.Conjugate(args[0], f, adjectives.Options{LeAdjective: le, Dialect: d})
			if !ok {
				return fmt.Errorf("%q has no %s form", args[0], f)
			}
			printConjugation(cmd.OutOrStdout(), conjugation)
			return nil
		},
	}
	cmd.Flags().StringVar(&form, "form", "predicative", "predicative, prenoun or postnoun")
	cmd.Flags().BoolVar(&le, "le", false, "The adjective starts with the le- prefix")
	return cmd
}

func newParseCmd(o *options) *cobra.Command {
	var loan bool
	cmd := &cobra.Command{
		Use:       "parse noun|verb|adj WORD",
		Short:     "List the ways a word can be read as a conjugated form",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"noun", "verb", "adj"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var v any
			switch args[0] {
			case "noun":
				d, err := o.parseDialect()
				if err != nil {
					return err
				}
				v = nouns.Parse(args[1], d, loan)
			case "verb":
				v = verbs.Parse(args[1])
			case "adj", "adjective":
				v = adjectives.Parse(args[1])
			default:
				return fmt.Errorf("unknown word kind %q", args[0])
			}
			return printJSON(cmd.OutOrStdout(), v, !o.noColor)
		},
	}
	cmd.Flags().BoolVar(&loan, "loan", false, "Treat the noun as a loanword")
	return cmd
}

func newNumberCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "number N|WORD",
		Short: "Convert between numbers and Na'vi number words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				d, derr := o.parseDialect()
				if derr != nil {
					return derr
				}
				var ok bool
				if n, ok = numbers.Parse(args[0], d); !ok {
					return fmt.Errorf("%q is not a number word", args[0])
				}
			}
			num, err := numbers.Conjugate(n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if o.json {
				return printJSON(out, num, !o.noColor)
			}
			fmt.Fprintf(out, "%d (octal %o): %s\n", num.Value, num.Value, num.Raw.Combined)
			return nil
		},
	}
}
