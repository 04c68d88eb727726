package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"KasumiAI/app/services/suggest/internal/bootstrap"
	"KasumiAI/app/services/suggest/internal/config"
	"KasumiAI/app/services/suggest/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/suggest.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	sc := svc.NewServiceContext(c)

	stopKafka := bootstrap.StartKafka(sc)
	defer stopKafka()
	stopAsynq := bootstrap.StartAsynq(sc)
	defer stopAsynq()

	logx.Infof("suggest worker started")

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	logx.Infof("suggest worker stopping")
}
