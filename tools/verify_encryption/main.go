package main

import (
	"flag"
	"math/big"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"

	"github.com/verenc/zkpaillier"
	"github.com/verenc/zkpaillier/circuits/paillier"
)

func main() {
	dir := flag.String("dir", zkpaillier.DATA_CACHE_DIR, "directory holding the key files")
	bits := flag.Int("bits", zkpaillier.BITS, "paillier modulus bit length of the compiled relation")
	in := flag.String("proof", "proof.bin", "proof file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Set(log)

	if flag.NArg() != 2 {
		log.Fatal().Msgf("usage: %s [flags] <n hex> <c hex>", os.Args[0])
	}
	n, ok := new(big.Int).SetString(flag.Arg(0), 16)
	if !ok {
		log.Fatal().Msg("invalid n")
	}
	c, ok := new(big.Int).SetString(flag.Arg(1), 16)
	if !ok {
		log.Fatal().Msg("invalid c")
	}

	vk, err := zkpaillier.LoadVk(*dir)
	if err != nil {
		log.Fatal().Err(err).Msg("load verifying key")
	}
	f, err := os.Open(*in)
	if err != nil {
		log.Fatal().Err(err).Msg("open proof file")
	}
	defer f.Close()
	var proof zkpaillier.Proof
	if _, err := proof.ReadFrom(f); err != nil {
		log.Fatal().Err(err).Msg("malformed proof")
	}

	limbs, err := paillier.PublicInputs(n, c, *bits)
	if err != nil {
		log.Fatal().Err(err).Msg("encode public inputs")
	}
	if len(limbs) != zkpaillier.NumPublic(*bits) {
		log.Fatal().Int("have", len(limbs)).Int("want", zkpaillier.NumPublic(*bits)).Msg("public input count mismatch")
	}
	publics := make([]fr.Element, len(limbs))
	for i, l := range limbs {
		publics[i].SetBigInt(l)
	}
	if err := vk.Verify(&proof, publics); err != nil {
		log.Fatal().Err(err).Msg("proof rejected")
	}
	log.Info().Msg("proof verified")
}
