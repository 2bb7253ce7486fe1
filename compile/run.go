package compile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sbc/common"
	"sbc/config"
	"sbc/css"
	"sbc/state"
)

// Run implements the compile subcommand: every stylesheet under SOURCE is
// compiled to DESTINATION along with its class map. Failures do not stop
// processing of remaining files, they are aggregated and reported at the
// end.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs = cmd.Bool("nodirs")
	env.Overwrite = cmd.Bool("overwrite")

	env.MapFormat = env.Cfg.Compiler.MapFormat()
	if requested := cmd.String("map-format"); requested != "" {
		format, err := common.ParseMapFmt(requested)
		if err != nil {
			log.Warn("Unknown class map format requested, using configured value", zap.Error(err))
		} else {
			env.MapFormat = format
		}
	}

	files, err := gatherSources(src)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no stylesheets found under '%s'", src)
	}

	scanner := css.NewScanner(env.Log)
	compiler := NewCompiler(env.Naming, env.Log)

	var result error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return multierr.Append(result, err)
		}
		if err := processFile(scanner, compiler, file, src, dst, env, log); err != nil {
			log.Error("Unable to compile stylesheet", zap.String("source", file), zap.Error(err))
			result = multierr.Append(result, err)
		}
	}
	return result
}

// gatherSources expands the input source into a sorted list of stylesheet
// files. Symbolic links are not followed.
func gatherSources(src string) ([]string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("unable to access input source: %w", err)
	}
	if !info.IsDir() {
		return []string{src}, nil
	}

	var files []string
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && strings.EqualFold(filepath.Ext(path), ".css") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func processFile(scanner *css.Scanner, compiler *Compiler, file, src, dst string, env *state.LocalEnv, log *zap.Logger) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	env.Rpt.StoreData("input/"+filepath.Base(file), data)

	sheet := scanner.Scan(data, file)
	block, err := compiler.Process(sheet, Context{SourcePath: file})
	if err != nil {
		return err
	}

	outPath, err := buildOutputPath(file, src, dst, env)
	if err != nil {
		return err
	}
	if err := writeOutput(outPath, []byte(sheet.String()), env.Overwrite); err != nil {
		return err
	}
	env.Rpt.Store("output/"+filepath.Base(outPath), outPath)

	cm := BuildClassMap(block, env.Naming)
	data, err = cm.Marshal(env.MapFormat)
	if err != nil {
		return fmt.Errorf("unable to serialize class map: %w", err)
	}
	mapPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + env.MapFormat.Ext()
	if err := writeOutput(mapPath, data, env.Overwrite); err != nil {
		return err
	}
	env.Rpt.Store("output/"+filepath.Base(mapPath), mapPath)

	log.Info("Stylesheet compiled",
		zap.String("source", file),
		zap.String("destination", outPath),
		zap.String("block", block.Name()),
		zap.Int("states", len(block.States())))
	return nil
}

// buildOutputPath keeps the source directory structure on the output unless
// requested otherwise.
func buildOutputPath(file, src, dst string, env *state.LocalEnv) (string, error) {
	name := config.CleanFileName(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))) + ".css"
	if env.NoDirs {
		return filepath.Join(dst, name), nil
	}

	base := src
	if info, err := os.Stat(src); err == nil && !info.IsDir() {
		base = filepath.Dir(src)
	}
	rel, err := filepath.Rel(base, filepath.Dir(file))
	if err != nil {
		rel = "."
	}
	return filepath.Join(dst, rel, name), nil
}

func writeOutput(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("destination already exists (consider --overwrite): %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
