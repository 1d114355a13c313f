package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt"
	"github.com/sirupsen/logrus"

	photon "github.com/photon-lang/photon-sub001/pkg"
)

func main() {
	var (
		comments   = getopt.BoolLong("comments", 'c', "emit comment tokens")
		whitespace = getopt.BoolLong("whitespace", 'w', "emit whitespace tokens")
		lenient    = getopt.BoolLong("lenient", 'l', "recover from lexical errors instead of stopping")
		stats      = getopt.BoolLong("stats", 's', "log tokenization statistics")
		help       = getopt.BoolLong("help", 'h', "display help")
	)
	getopt.SetParameters("SOURCE")
	getopt.Parse()

	if *help || getopt.NArgs() != 1 {
		getopt.Usage()
		os.Exit(2)
	}
	path := getopt.Arg(0)

	log := logrus.New()

	cfg := photon.DefaultConfig()
	cfg.PreserveComments = *comments
	cfg.PreserveWhitespace = *whitespace
	cfg.StrictMode = !*lenient

	sources := photon.NewSourceManager()
	id, err := sources.LoadFile(path)
	if err != nil {
		log.WithError(err).Fatal("cannot load source")
	}

	lexer := photon.NewLexer(sources, cfg)
	stream, err := lexer.TokenizeFile(id)
	if err != nil {
		if lexErr, ok := err.(*photon.LexicalError); ok {
			pos := sources.Resolve(lexErr.Location)
			log.WithField("position", pos.String()).Fatal(lexErr)
		}
		log.Fatal(err)
	}

	for _, tok := range stream.Tokens() {
		pos := sources.Resolve(tok.Location)
		fmt.Printf("%-24s %s\n", pos, tok)
	}

	for _, lexErr := range stream.Errors() {
		pos := sources.Resolve(lexErr.Location)
		log.WithField("position", pos.String()).Warn(lexErr.Error())
	}

	if *stats {
		s := lexer.Stats()
		log.WithFields(logrus.Fields{
			"tokens":     s.TokensProduced,
			"bytes":      s.BytesProcessed,
			"lines":      s.LinesProcessed,
			"recovered":  s.ErrorsRecovered,
			"arena":      s.PeakArenaBytes,
			"tokens/sec": int(s.TokensPerSecond()),
		}).Info("tokenization complete")
	}
}
