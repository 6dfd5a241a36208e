package main

import (
	"context"
	"time"

	"github.com/Nzabinesha/MoMo-SMS-data-processor/internal/app"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application := app.New()
	wait := application.Start()
	<-wait
	application.Stop(ctx)
}
