package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/magiceden-go/base/ctx"
	"github.com/x-xyz/magiceden-go/base/log"
	"github.com/x-xyz/magiceden-go/base/ptr"
	"github.com/x-xyz/magiceden-go/domain"
	"github.com/x-xyz/magiceden-go/domain/chain"
	"github.com/x-xyz/magiceden-go/service/magiceden"
)

var (
	configFile = pflag.String("config", "infra/configs/floorwatch/config.yaml", "config file path")
	collection = pflag.String("collection", "", "collection contract to watch, overrides config")
)

func init() {
	pflag.Parse()
	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	if err := viper.ReadInConfig(); err != nil {
		panic(err)
	}
	if viper.GetBool("debug") {
		log.SetDevelopment()
	}
	viper.BindEnv("magiceden.apikey", "MAGICEDEN_APIKEY")
}

func main() {
	ctx := bCtx.Background()

	ch := chain.Chain(viper.GetString("magiceden.chain"))
	if !ch.IsValid() {
		ctx.WithField("chain", ch).Panic(domain.ErrInvalidChain)
	}

	contract := domain.Address(*collection)
	if contract.IsEmpty() {
		contract = domain.Address(viper.GetString("watch.collection"))
	}
	if contract.IsEmpty() {
		ctx.Panic("watch.collection is required")
	}

	interval := viper.GetDuration("watch.interval")
	if interval == 0 {
		interval = time.Minute
	}

	client := magiceden.NewClient(&magiceden.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    viper.GetDuration("magiceden.timeout"),
		Apikey:     viper.GetString("magiceden.apikey"),
		Chain:      ch,
	})

	ctx.WithFields(log.Fields{
		"chain":      ch,
		"collection": contract,
		"interval":   interval,
	}).Info("floorwatch started")

	checkFloor(ctx, client, contract)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case <-ticker.C:
			checkFloor(ctx, client, contract)
		case <-quit:
			ctx.Info("shutting down")
			return
		}
	}
}

func checkFloor(ctx bCtx.Ctx, client magiceden.Client, contract domain.Address) {
	sortBy := magiceden.SortByPrice
	status := magiceden.AskStatusActive
	res, err := client.RetrieveAsks(ctx, &magiceden.AsksRequest{
		Contracts: []domain.Address{contract},
		Status:    &status,
		SortBy:    &sortBy,
		Limit:     ptr.Uint16(1),
	})
	if err != nil {
		ctx.WithField("err", err).Error("client.RetrieveAsks failed")
		return
	}
	if len(res.Orders) == 0 {
		ctx.WithField("collection", contract).Info("no active asks")
		return
	}

	floor := res.Orders[0]
	price, err := floor.DisplayPrice()
	if err != nil {
		ctx.WithFields(log.Fields{
			"orderId": floor.Id,
			"err":     err,
		}).Error("floor.DisplayPrice failed")
		return
	}
	ctx.WithFields(log.Fields{
		"orderId":  floor.Id,
		"tokenSet": floor.TokenSetId,
		"price":    price.String(),
		"symbol":   floor.Price.Currency.Symbol,
		"source":   floor.Source["domain"],
	}).Info("current floor")
}
