package test

import (
	"math/rand"
	"strings"
)

const validTokens = "fn;main;let;mut;x;count;(;);{;};[;];,;:;::;->;=>;==;!=;<=;>=;<=>;<<=;+;-;*;**;/;%;=;+=;..;..=;...;1;42;1_000;0xFF;0b1010;0o777;3.14;6.02e23;0x1.8p3;\"this is a string\";\"escaped\\ttab\";r\"raw \\n body\";\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat.\";\"\";'a';'\\n';true;false;null;self;return;if;else;while;// comment\n;/* block */;\n"

// GetRandomTokens builds a source of size space-separated valid tokens
// for lexer benchmarks.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
