package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"

	webserver "github.com/Zkmey/go-webserver"
)

var listenAddr = flag.String("listen", ":8080", "Address to listen on.")
var maxClients = flag.Int("max-clients", 0, "Connections served at once; 0 means no cap.")

type serverLog struct{ *log.Logger }

func (l serverLog) Infof(format string, v ...interface{})  { l.Printf(format, v...) }
func (l serverLog) Errorf(format string, v ...interface{}) { l.Printf(format, v...) }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	flag.Parse()

	logger := log.New(os.Stderr, "webserver: ", log.LstdFlags)
	logger.Println("Server is starting...")

	l, err := webserver.Listen(ctx, *listenAddr)
	if err != nil {
		logger.Fatalln(err)
	}
	go func() {
		<-ctx.Done()
		// a second interrupt falls through to the default exit behaviour
		stop()
		l.Close()
	}()
	logger.Println("Server is ready to handle requests at", l.Addr())

	srv := &webserver.Server{Log: serverLog{logger}, MaxClients: *maxClients}
	if err := srv.Serve(l); err != nil && !errors.Is(err, net.ErrClosed) {
		logger.Fatalln(err)
	}
	logger.Println("Server stopped")
}
