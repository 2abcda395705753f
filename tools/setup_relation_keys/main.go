package main

import (
	"flag"
	"os"

	"github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/verenc/zkpaillier"
	"github.com/verenc/zkpaillier/circuits/paillier"
)

func main() {
	dir := flag.String("dir", zkpaillier.DATA_CACHE_DIR, "directory receiving the key files")
	bits := flag.Int("bits", zkpaillier.BITS, "paillier modulus bit length")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger.Set(log)

	var pk zkpaillier.Pk
	if err := pk.Compile(paillier.NewCircuit(*bits)); err != nil {
		log.Fatal().Err(err).Msg("compile relation")
	}

	var eg errgroup.Group
	eg.Go(func() error { return zkpaillier.SavePk(*dir, &pk) })
	eg.Go(func() error { return zkpaillier.SaveVk(*dir, pk.Vk()) })
	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("write relation keys")
	}
	log.Info().Str("dir", *dir).Int("bits", *bits).Msg("relation keys written")
}
