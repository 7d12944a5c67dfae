package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ajhaydock/letsencrypt/jsonobj"
	"github.com/ajhaydock/letsencrypt/messages"
)

func main() {
	fs := flag.NewFlagSet("acmemsg", flag.ExitOnError)
	var typ string
	var fromYAML bool
	var strict bool
	fs.StringVar(&typ, "type", "", "message type: error|registration|challenge|authorization|revocation|identifier")
	fs.BoolVar(&fromYAML, "yaml", false, "read the document as YAML instead of JSON")
	fs.BoolVar(&strict, "strict", false, "reject unknown keys instead of ignoring them")
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])
	if typ == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := readInput(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "acmemsg:", err)
		os.Exit(1)
	}

	var m map[string]any
	if fromYAML {
		m, err = jsonobj.FromYAMLBytes(data)
	} else {
		m, err = jsonobj.FromJSONBytes(data)
	}
	if err != nil {
		reportDecode(err)
		os.Exit(1)
	}

	obj, err := decodeMessage(typ, m, strict)
	if err != nil {
		reportDecode(err)
		os.Exit(1)
	}

	full, err := obj.ToJSON()
	if err != nil {
		fmt.Fprintln(os.Stderr, "acmemsg:", err)
		os.Exit(1)
	}
	out, err := jsonobj.Canonical(full)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acmemsg:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "acmemsg validates a message document and prints its canonical form.\n\nUsage:\n  acmemsg -type T [-yaml] [-strict] [file]\n\nReads stdin when no file is given.")
		fs.PrintDefaults()
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func decodeMessage(typ string, m map[string]any, strict bool) (jsonobj.FullMarshaler, error) {
	opt := jsonobj.DecodeOpt{}
	if strict {
		opt.Unknown = jsonobj.UnknownStrict
	}
	switch typ {
	case "error":
		return messages.ErrorFromJSON(m, opt)
	case "registration":
		return messages.RegistrationFromJSON(m, opt)
	case "challenge":
		return messages.ChallengeBodyFromJSON(m)
	case "authorization":
		return messages.AuthorizationFromJSON(m, opt)
	case "revocation":
		return messages.RevocationFromJSON(m, opt)
	case "identifier":
		return messages.IdentifierFromJSON(m, opt)
	default:
		return nil, fmt.Errorf("unknown message type %q", typ)
	}
}

func reportDecode(err error) {
	iss, ok := jsonobj.AsIssues(err)
	if !ok {
		fmt.Fprintln(os.Stderr, "acmemsg:", err)
		return
	}
	for _, it := range iss {
		fmt.Fprintf(os.Stderr, "%s at %s: %s\n", it.Code, it.Path, it.Message)
	}
}
