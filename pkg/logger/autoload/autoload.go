// Package autoload configures the global logger from the environment on
// import.
package autoload

import (
	configx "github.com/finchain/fin/pkg/config"
	logx "github.com/finchain/fin/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
