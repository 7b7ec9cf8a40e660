package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gammazero/workerpool"
	"go.uber.org/zap"

	"github.com/amine-amaach/uaspace/server"
	"github.com/amine-amaach/uaspace/services"
	"github.com/amine-amaach/uaspace/ua"
	"github.com/amine-amaach/uaspace/utils"
)

type equipment struct {
	node        *server.ObjectNode
	measurement *server.VariableNode
	dataGen     *services.DataGenService
}

// attributeLogger logs every attribute change dispatched by the nodes it is
// attached to. It must not call back into the node.
type attributeLogger struct {
	logger *zap.SugaredLogger
}

func (l *attributeLogger) OnAttributeChanged(nodeID ua.NodeID, attributeID uint32, value ua.Variant) {
	l.logger.Debugw("attribute changed", "node", nodeID, "attribute", attributeID, "value", value)
}

func main() {
	version := "v1.0.0"
	website := "https://www.linkedin.com/in/amine-amaach/"
	banner := `
 _   _   _    ____
| | | | / \  / ___| _ __   __ _  ___ ___    %s
| | | |/ _ \ \___ \| '_ \ / _` + "`" + ` |/ __/ _ \
| |_| / ___ \ ___) | |_) | (_| | (_|  __/
 \___/_/   \_\____/| .__/ \__,_|\___\___|
                   |_|
Plant Equipment Address Space
______________________________________________________________________________O/__________
%s                                     O\
`
	// Print Banner
	fmt.Println(utils.Colorize(fmt.Sprintf(banner, version, website), utils.Cyan))

	// Getting configs from the file
	configs := utils.GetConfig()
	logger := utils.NewLogger(configs.LogLevel)
	defer logger.Sync()

	svc, err := services.NewPlantService(configs.NamespaceURI, logger)
	if err != nil {
		logger.Fatalw("building address space", "error", err)
	}
	logger.Infow("address space ready", "namespace", configs.NamespaceURI, "nodes", svc.Space.Len())

	attrLog := &attributeLogger{logger: logger}

	plant := make(map[string]equipment)
	for _, param := range configs.EquipmentParams {
		logger.Info(utils.Colorize(fmt.Sprintf("%s equipment config found ⚙️", param.Name), utils.Blue))
		node, measurement, err := svc.CreateEquipmentNode(param.Name)
		if err != nil {
			logger.Fatalw("creating equipment", "name", param.Name, "error", err)
		}
		node.AddAttributeListener(attrLog)
		measurement.AddAttributeListener(attrLog)

		if start, ok := node.FindMethodNode(ua.NewNodeIDString(svc.NamespaceIndex(), param.Name+".Start")); ok {
			name := param.Name
			start.SetCallMethodHandler(func(ctx context.Context, in []ua.Variant) ([]ua.Variant, error) {
				logger.Infow("equipment started", "name", name)
				return nil, nil
			})
		}

		plant[param.Name] = equipment{
			node:        node,
			measurement: measurement,
			dataGen:     services.NewDataGenService(param.Mean, param.StandardDeviation),
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	wp := workerpool.New(len(plant))

	for key, eq := range plant {
		eq.measurement.SetValue(ua.NewDataValueNow(eq.dataGen.CalculateNextValue()))
		logger.Info(utils.Colorize(fmt.Sprintf("🏷️  Publishing %s measurement data ...", key), utils.Green))
	}

	// Setting up Random/Fixed delay between updates :
	go func() {
		delay := configs.SET_DELAY_BETWEEN_UPDATES
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(delay) * time.Second):
				if configs.RANDOMIZE_DELAY_BETWEEN_UPDATES {
					delay = rand.Intn(configs.SET_DELAY_BETWEEN_UPDATES) + rand.Intn(2)
				}
				for _, eq := range plant {
					eq := eq
					wp.Submit(func() {
						eq.measurement.SetValue(ua.NewDataValueNow(eq.dataGen.CalculateNextValue()))
					})
				}
			}
		}
	}()

	// Wait for a signal before exiting
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	signal.Notify(sig, syscall.SIGTERM)
	<-sig
	logger.Info("Stopping simulators...")
	cancel()
	wp.StopWait()
}
