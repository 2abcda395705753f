package main

import (
	"flag"
	"math/big"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/verenc/zkpaillier"
	"github.com/verenc/zkpaillier/circuits/paillier"
)

func main() {
	dir := flag.String("dir", zkpaillier.DATA_CACHE_DIR, "directory holding the key files")
	bits := flag.Int("bits", zkpaillier.BITS, "paillier modulus bit length of the compiled relation")
	out := flag.String("out", "proof.bin", "output proof file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Set(log)

	if flag.NArg() != 3 {
		log.Fatal().Msgf("usage: %s [flags] <n hex> <m hex> <r hex>", os.Args[0])
	}
	n, ok := new(big.Int).SetString(flag.Arg(0), 16)
	if !ok {
		log.Fatal().Msg("invalid n")
	}
	m, ok := new(big.Int).SetString(flag.Arg(1), 16)
	if !ok {
		log.Fatal().Msg("invalid m")
	}
	r, ok := new(big.Int).SetString(flag.Arg(2), 16)
	if !ok {
		log.Fatal().Msg("invalid r")
	}

	pk, err := zkpaillier.LoadPk(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("load proving key")
	}
	c := paillier.Encrypt(n, m, r)
	assignment, err := paillier.NewAssignment(n, m, r, c, *bits)
	if err != nil {
		log.Fatal().Err(err).Msg("build assignment")
	}
	_, proof, err := pk.Prove(assignment)
	if err != nil {
		log.Fatal().Err(err).Msg("prove")
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal().Err(err).Msg("create proof file")
	}
	defer f.Close()
	if _, err := proof.WriteTo(f); err != nil {
		log.Fatal().Err(err).Msg("write proof")
	}
	log.Info().Str("proof", *out).Str("c", c.Text(16)).Msg("encryption proved")
}
