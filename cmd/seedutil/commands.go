package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Klingon-tech/seed-utils/internal/entropy"
	"github.com/Klingon-tech/seed-utils/internal/extkey"
	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/internal/mnemonic"
	"github.com/Klingon-tech/seed-utils/internal/wallet"
	"github.com/Klingon-tech/seed-utils/pkg/types"
	"github.com/urfave/cli"
)

// randomSource supplies the entropy appended by extend.
var randomSource = entropy.CryptoSource

var passphraseFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "passphrase",
		Usage: "BIP-39 passphrase of the seed",
	},
	cli.BoolFlag{
		Name:  "passphrase-prompt",
		Usage: "read the BIP-39 passphrase from the terminal",
	},
}

var childCommand = cli.Command{
	Name:      "child",
	Category:  "Seeds",
	Usage:     "Derive BIP-85 child seeds from a seed.",
	ArgsUsage: "<seed words>",
	Description: `
	Derives child mnemonics at m/83696968'/39'/0'/<words>'/<index>'.
	The same seed, passphrase, length and index always give the same child.`,
	Flags: append([]cli.Flag{
		cli.UintFlag{
			Name:  "index, i",
			Usage: "first child index",
		},
		cli.UintFlag{
			Name:  "number, n",
			Value: 1,
			Usage: "number of consecutive children to derive",
		},
		cli.IntFlag{
			Name:  "words, w",
			Usage: "words per child seed: 12, 18 or 24 (default from config)",
		},
	}, passphraseFlags...),
	Action: deriveChild,
}

func deriveChild(c *cli.Context) error {
	cfg := loadedConfig(c)
	seed, err := seedArg(c)
	if err != nil {
		return exitErr(err)
	}
	words, err := wordsFlag(c, cfg.Words.Child)
	if err != nil {
		return exitErr(err)
	}
	index, err := uint32Flag(c, "index")
	if err != nil {
		return exitErr(err)
	}
	count, err := uint32Flag(c, "number")
	if err != nil {
		return exitErr(err)
	}
	pass, err := passphrase(c)
	if err != nil {
		return exitErr(err)
	}

	children, err := wallet.DeriveChildSeeds(seed, pass, wallet.ChildParams{
		Words:   words,
		Index:   index,
		Count:   count,
		Workers: cfg.Workers,
	})
	if err != nil {
		return exitErr(err)
	}
	for _, cs := range children {
		fmt.Fprintf(c.App.Writer, "Derived seed at %d: %s\n", cs.Index, cs.Mnemonic)
	}
	return nil
}

var extendCommand = cli.Command{
	Name:      "extend",
	Category:  "Seeds",
	Usage:     "Extend a seed with fresh random entropy.",
	ArgsUsage: "<seed words>",
	Description: `
	Appends random entropy to a 12 or 18 word seed. The new seed starts with
	the same words; only the words after the input's entropy are new.`,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "words, w",
			Usage: "target word count: 18 or 24 (default from config)",
		},
	},
	Action: extendSeed,
}

func extendSeed(c *cli.Context) error {
	cfg := loadedConfig(c)
	seed, err := seedArg(c)
	if err != nil {
		return exitErr(err)
	}
	words, err := wordsFlag(c, cfg.Words.Extend)
	if err != nil {
		return exitErr(err)
	}
	extended, err := entropy.Extend(seed, words, randomSource())
	if err != nil {
		return exitErr(err)
	}
	fmt.Fprintf(c.App.Writer, "Extended seed: %s\n", extended)
	return nil
}

var truncateCommand = cli.Command{
	Name:      "truncate",
	Category:  "Seeds",
	Usage:     "Shorten a seed by dropping entropy.",
	ArgsUsage: "<seed words>",
	Description: `
	Keeps the leading entropy of an 18 or 24 word seed. The new seed begins
	with the same words; only the last one changes to satisfy the checksum.`,
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "words, w",
			Usage: "target word count: 12 or 18 (default from config)",
		},
	},
	Action: truncateSeed,
}

func truncateSeed(c *cli.Context) error {
	cfg := loadedConfig(c)
	seed, err := seedArg(c)
	if err != nil {
		return exitErr(err)
	}
	words, err := wordsFlag(c, cfg.Words.Truncate)
	if err != nil {
		return exitErr(err)
	}
	truncated, err := entropy.Truncate(seed, words)
	if err != nil {
		return exitErr(err)
	}
	fmt.Fprintf(c.App.Writer, "Truncated seed: %s\n", truncated)
	return nil
}

var xorCommand = cli.Command{
	Name:      "xor",
	Category:  "Seeds",
	Usage:     "XOR the entropy of two or more seeds.",
	ArgsUsage: " ",
	Description: `
	All seeds must have the same length. Each seed is quoted and passed with
	its own --seed flag.`,
	Flags: []cli.Flag{
		cli.StringSliceFlag{
			Name:  "seed, s",
			Usage: "seed to combine (repeat at least twice)",
		},
	},
	Action: xorSeeds,
}

func xorSeeds(c *cli.Context) error {
	raw := c.StringSlice("seed")
	if len(raw) < 2 {
		return exitErr(fmt.Errorf("%w, got %d", entropy.ErrTooFewMnemonics, len(raw)))
	}
	seeds := make([]mnemonic.Mnemonic, len(raw))
	for i, s := range raw {
		m, err := mnemonic.Parse(s)
		if err != nil {
			return exitErr(fmt.Errorf("seed %d: %w", i+1, err))
		}
		seeds[i] = m
	}
	combined, err := entropy.XOR(seeds...)
	if err != nil {
		return exitErr(err)
	}
	fmt.Fprintf(c.App.Writer, "XORed seed: %s\n", combined)
	return nil
}

var (
	xpubCommand = accountKeyCommand("xpub", false)
	xprvCommand = accountKeyCommand("xprv", true)
)

func accountKeyCommand(name string, private bool) cli.Command {
	kind := "public"
	if private {
		kind = "private"
	}
	return cli.Command{
		Name:      name,
		Category:  "Keys",
		Usage:     fmt.Sprintf("Derive account or master extended %s keys from a seed.", kind),
		ArgsUsage: "<seed words>",
		Description: `
	Account keys live at m/<purpose>'/<coin>'/<index>' where the purpose
	follows the format (44, 49 or 84) and the coin follows the network.
	With --master the depth-0 key is printed instead, and --path derives
	the key at any path such as m/86h/0h/0h.`,
		Flags: append([]cli.Flag{
			cli.BoolFlag{
				Name:  "master",
				Usage: "print the master key instead of account keys",
			},
			cli.StringFlag{
				Name:  "path",
				Usage: "derive the key at this path instead of account keys",
			},
			cli.UintFlag{
				Name:  "index, i",
				Usage: "first account index",
			},
			cli.UintFlag{
				Name:  "number, n",
				Value: 1,
				Usage: "number of consecutive accounts to derive",
			},
			cli.StringFlag{
				Name:  "format, f",
				Value: types.FormatNativeSegwit.String(),
				Usage: "legacy, p2sh-segwit or native-segwit",
			},
			cli.IntFlag{
				Name:  "addresses, a",
				Usage: "addresses to list per account",
			},
			cli.BoolFlag{
				Name:  "change",
				Usage: "list change addresses instead of receive addresses",
			},
		}, passphraseFlags...),
		Action: func(c *cli.Context) error {
			return deriveKeys(c, name, private)
		},
	}
}

func deriveKeys(c *cli.Context, label string, private bool) error {
	cfg := loadedConfig(c)
	if c.Bool("master") && (c.IsSet("index") || c.IsSet("number") || c.IsSet("addresses") || c.Bool("change")) {
		return exitErr(errors.New("--master cannot be combined with --index, --number, --addresses or --change"))
	}
	if c.IsSet("path") && (c.Bool("master") || c.IsSet("index") || c.IsSet("number") || c.IsSet("addresses") || c.Bool("change")) {
		return exitErr(errors.New("--path cannot be combined with --master, --index, --number, --addresses or --change"))
	}
	seed, err := seedArg(c)
	if err != nil {
		return exitErr(err)
	}
	format, err := types.ParseOutputFormat(c.String("format"))
	if err != nil {
		return exitErr(err)
	}
	pass, err := passphrase(c)
	if err != nil {
		return exitErr(err)
	}

	if c.IsSet("path") {
		path, err := wallet.ParsePath(c.String("path"))
		if err != nil {
			return exitErr(err)
		}
		key, err := wallet.DerivePathKey(seed, pass, path, wallet.RootParams{
			Format:  format,
			Private: private,
			Network: cfg.Network,
		})
		if err != nil {
			return exitErr(err)
		}
		fmt.Fprintf(c.App.Writer, "Derived %s at %s: %s\n", label, path, key)
		return nil
	}

	if c.Bool("master") {
		key, err := wallet.DeriveRootKey(seed, pass, wallet.RootParams{
			Format:  format,
			Private: private,
			Network: cfg.Network,
		})
		if err != nil {
			return exitErr(err)
		}
		fmt.Fprintf(c.App.Writer, "Master %s: %s\n", label, key)
		return nil
	}

	index, err := uint32Flag(c, "index")
	if err != nil {
		return exitErr(err)
	}
	count, err := uint32Flag(c, "number")
	if err != nil {
		return exitErr(err)
	}
	accounts, err := wallet.DeriveAccountKeys(seed, pass, wallet.AccountParams{
		Format:    format,
		Private:   private,
		Network:   cfg.Network,
		Index:     index,
		Count:     count,
		Workers:   cfg.Workers,
		Addresses: c.Int("addresses"),
		Change:    c.Bool("change"),
	})
	if err != nil {
		return exitErr(err)
	}
	for _, ak := range accounts {
		fmt.Fprintf(c.App.Writer, "Derived %s at %s: %s\n", label, ak.Path, ak.Key)
		for i, addr := range ak.Addresses {
			fmt.Fprintf(c.App.Writer, "  %s: %s\n", ak.AddressPath.Child(uint32(i)), addr)
		}
	}
	return nil
}

var convertCommand = cli.Command{
	Name:      "convert",
	Category:  "Keys",
	Usage:     "Re-encode an extended key under another format.",
	ArgsUsage: "<extended key>",
	Description: `
	Changes only the version bytes, for example xpub to zpub. Network and key
	kind are kept. With --neuter a private key is turned into its public form.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "format, f",
			Usage: "legacy, p2sh-segwit or native-segwit (default: keep)",
		},
		cli.BoolFlag{
			Name:  "neuter",
			Usage: "output the public form of a private key",
		},
	},
	Action: convertKey,
}

func convertKey(c *cli.Context) error {
	if c.NArg() != 1 {
		return exitErr(errors.New("expected exactly one extended key"))
	}
	if !c.IsSet("format") && !c.Bool("neuter") {
		return exitErr(errors.New("nothing to do: give --format and/or --neuter"))
	}
	var format *types.OutputFormat
	if c.IsSet("format") {
		f, err := types.ParseOutputFormat(c.String("format"))
		if err != nil {
			return exitErr(err)
		}
		format = &f
	}

	if !c.Bool("neuter") {
		out, err := extkey.RemapString(c.Args().First(), *format)
		if err != nil {
			return exitErr(err)
		}
		fmt.Fprintln(c.App.Writer, out)
		return nil
	}

	key, err := extkey.Parse(c.Args().First())
	if err != nil {
		return exitErr(err)
	}
	if key, err = key.Neuter(); err != nil {
		return exitErr(err)
	}
	if format != nil {
		key = key.Remap(*format)
	}
	fmt.Fprintln(c.App.Writer, key)
	return nil
}

// seedArg joins the positional arguments into a mnemonic, so seeds may be
// passed quoted or as separate words.
func seedArg(c *cli.Context) (mnemonic.Mnemonic, error) {
	if c.NArg() == 0 {
		return nil, errors.New("missing seed words")
	}
	return mnemonic.Parse(strings.Join(c.Args(), " "))
}

func wordsFlag(c *cli.Context, def types.WordCount) (types.WordCount, error) {
	if !c.IsSet("words") {
		return def, nil
	}
	return types.WordCountFromInt(c.Int("words"))
}

func uint32Flag(c *cli.Context, name string) (uint32, error) {
	v := c.Uint(name)
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("--%s %d out of range", name, v)
	}
	return uint32(v), nil
}

func passphrase(c *cli.Context) (string, error) {
	if !c.Bool("passphrase-prompt") {
		return c.String("passphrase"), nil
	}
	if c.IsSet("passphrase") {
		return "", errors.New("--passphrase and --passphrase-prompt are exclusive")
	}
	pass, err := readPassword("Passphrase: ")
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	log.CLI.Debug().Msg("Passphrase read from terminal")
	return pass, nil
}
