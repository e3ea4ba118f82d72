package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"github.com/oklog/run"

	"github.com/oqtopus-team/oqtopus-engine/iradapter/backend"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/core"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/log"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/program"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/qubit"
	"github.com/oqtopus-team/oqtopus-engine/iradapter/session"

	"go.uber.org/dig"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var versionByBuildFlag string
var parser *flags.Parser
var adapter *Adapter

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Printf("Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	} else {
		fmt.Println("Found \".env\" file. Environment variables are preferred, " +
			"but non-conflicting variables are those in the \".env\" file.")
	}
	adapter = &Adapter{}
	setParser(adapter)
}

type Adapter struct {
	DIContainerParameters *DIContainerParameters
	Conf                  *core.Conf
}

type DIContainerParameters struct {
	Output string `long:"output" description:"backend receiving the IR" default:"stdout" choice:"stdout" choice:"json" choice:"file" env:"QIQB_ADAPTER_OUTPUT"`
}

func setParser(a *Adapter) {
	parser = flags.NewParser(a, flags.Default)
	parser.ShortDescription = "qiqb ir adapter"
	parser.LongDescription = "translates quantum programs into a hardware-agnostic IR tree."
	parser.AddCommand("run", "run a program", "run a TOML program in one session and submit its IR", &runCmd{})
	parser.AddCommand("version", "show version", "show the adapter version", &versionCmd{})
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Printf("failed to parse flags, because %s\n", err)
		}
		os.Exit(code)
	}
}

func (a *Adapter) provideDIContainer() (*dig.Container, error) {
	c := dig.New()
	err := c.Provide(func() (core.Backend, error) {
		switch a.DIContainerParameters.Output {
		case "stdout":
			return &backend.StdoutBackend{}, nil
		case "json":
			return &backend.JSONBackend{}, nil
		case "file":
			return &backend.FileBackend{}, nil
		default:
			return &backend.StdoutBackend{}, fmt.Errorf("%s is an unknown output", a.DIContainerParameters.Output)
		}
	})
	if err != nil {
		return &dig.Container{}, err
	}
	return c, nil
}

func main() {
	parse()
}

type runCmd struct {
	Program     string `long:"program" short:"p" description:"program file (TOML)" required:"true" env:"QIQB_ADAPTER_PROGRAM"`
	BackendName string `long:"backend-name" short:"b" description:"execution backend as <Platform>:<Device>" default:"qpp" env:"QIQB_ADAPTER_BACKEND_NAME"`
}

func (c *runCmd) Execute(args []string) (err error) {
	conf := adapter.Conf
	logger, err := log.SetZap(conf)
	if err != nil {
		fmt.Printf("Failed to setup logger. Reason:%s\n", err)
		return err
	}
	defer logger.Sync()

	core.ResetSetting()
	registerSetting(conf)
	zap.L().Debug(fmt.Sprintf("Registered %d component settings", len(core.GetGlobalSetting().ComponentSetting)))
	if err := core.ParseSettingFromPathIfExists(conf.SettingPath); err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse settings/reason:%s", err))
		return err
	}

	s, err := setupSystemComponents(conf)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, s.TearDown())
	}()
	b, err := s.GetBackend()
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to get backend/reason:%s", err))
		return err
	}

	p, err := program.Load(c.Program)
	if err != nil {
		return err
	}
	v, _ := core.GetComponentSetting(qubit.SettingName)
	sess, err := session.New(c.BackendName, qubit.SettingFrom(v, conf.MaxQubits).Capacity)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to start session/reason:%s", err))
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var g run.Group
	g.Add(
		func() error {
			return p.Run(ctx, sess)
		},
		func(error) {
			cancel()
		})
	g.Add(run.SignalHandler(ctx, os.Interrupt))
	if err := g.Run(); err != nil {
		zap.L().Error(fmt.Sprintf("failed to run program/name:%s/reason:%s", p.Name, err))
		return err
	}
	return sess.Close(context.Background(), b)
}

type versionCmd struct{}

func (c *versionCmd) Execute(args []string) error {
	fmt.Println(core.SetVersion(adapter.Conf, versionByBuildFlag))
	return nil
}

func setupSystemComponents(conf *core.Conf) (*core.SystemComponents, error) {
	core.SetVersion(conf, versionByBuildFlag)
	core.SetInfo(conf)
	zap.L().Info(fmt.Sprintf("Adapter info:%s", core.CurrentInfo))
	zap.L().Debug(fmt.Sprintf("Providing DI Container with parameters %+v", adapter.DIContainerParameters))

	container, err := adapter.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return nil, err
	}
	zap.L().Debug("Setting up System Components")
	s := core.NewSystemComponents(container)
	if err := s.Setup(conf); err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up Container. Reason:%s", err.Error()))
		return nil, err
	}
	return s, nil
}

func registerSetting(conf *core.Conf) {
	core.RegisterSetting(qubit.SettingName, qubit.Setting{Capacity: conf.MaxQubits})
	core.RegisterSetting(backend.FileBackendSettingName, backend.NewFileBackendSetting())
}
