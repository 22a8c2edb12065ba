// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Quatconv converts rotations between Euler angles,
// axis-angle, rotation matrices, unit vector pairs and
// quaternions.
//
// Usage:
//
//	quatconv euler [--order XYZ] X Y Z
//	quatconv axis X Y Z ANGLE
//	quatconv matrix M0 ... M15
//	quatconv vectors FX FY FZ TX TY TZ
//	quatconv slerp X0 Y0 Z0 W0 X1 Y1 Z1 W1 T
//	quatconv nodes FILE...
//
// Matrices are given in column-major order. Angles are
// in radians unless --degrees is set.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gviegas/scenemath/asset"
	"github.com/gviegas/scenemath/linear"
	"github.com/gviegas/scenemath/node"
)

type options struct {
	order   string
	degrees bool
	double  bool
	matrix  bool
	verbose bool
	limit   int

	log *zap.Logger
	out io.Writer
}

func (o *options) flags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.degrees, "degrees", false, "angles are given in degrees")
	fs.BoolVar(&o.double, "double", false, "compute in double precision")
	fs.BoolVar(&o.matrix, "matrix", false, "also print the rotation matrix")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func newRootCommand(out io.Writer) *cobra.Command {
	o := &options{out: out, log: zap.NewNop()}
	cmd := &cobra.Command{
		Use:           "quatconv",
		Short:         "Convert rotations to quaternions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !o.verbose {
				return nil
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			o.log = log.Named("quatconv")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.log.Sync()
		},
	}
	cmd.SetOut(out)
	o.flags(cmd.PersistentFlags())
	cmd.AddCommand(
		newEulerCommand(o),
		newAxisCommand(o),
		newMatrixCommand(o),
		newVectorsCommand(o),
		newSlerpCommand(o),
		newNodesCommand(o),
	)
	return cmd
}

// run parses args with the precision selected by
// o.double and prints the quaternion produced by
// the build function for that precision.
func run(o *options, args []string, f32 func([]float32) (linear.Qf, error), f64 func([]float64) (linear.Qd, error)) error {
	if o.double {
		return convert(o, args, f64)
	}
	return convert(o, args, f32)
}

func convert[T linear.Float](o *options, args []string, build func([]T) (linear.Q[T], error)) error {
	v, err := parseFloats[T](args)
	if err != nil {
		return err
	}
	q, err := build(v)
	if err != nil {
		return err
	}
	o.log.Debug("converted", zap.Stringer("quaternion", q), zap.Float64("length", float64(q.Len())))
	show(o, &q)
	return nil
}

func parseFloats[T linear.Float](args []string) ([]T, error) {
	v := make([]T, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		v[i] = T(f)
	}
	return v, nil
}

func show[T linear.Float](o *options, q *linear.Q[T]) {
	fmt.Fprintln(o.out, q)
	if o.matrix {
		var m linear.M3[T]
		m.RotateQ(q)
		for r := range m {
			fmt.Fprintln(o.out, m[0][r], m[1][r], m[2][r])
		}
	}
}

func radians[T linear.Float](o *options, a T) T {
	if o.degrees {
		return a * math.Pi / 180
	}
	return a
}

func newEulerCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "euler X Y Z",
		Short: "Convert Euler angles",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := linear.ParseOrder(o.order)
			if err != nil {
				return err
			}
			return run(o, args, eulerQ[float32](o, order), eulerQ[float64](o, order))
		},
	}
	cmd.Flags().StringVar(&o.order, "order", linear.XYZ.String(), "rotation order")
	return cmd
}

func eulerQ[T linear.Float](o *options, order linear.Order) func([]T) (linear.Q[T], error) {
	return func(v []T) (q linear.Q[T], err error) {
		e := linear.Euler[T]{
			X:     radians(o, v[0]),
			Y:     radians(o, v[1]),
			Z:     radians(o, v[2]),
			Order: order,
		}
		err = q.FromEuler(&e, true)
		return
	}
}

func newAxisCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "axis X Y Z ANGLE",
		Short: "Convert an axis and angle",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args, axisQ[float32](o), axisQ[float64](o))
		},
	}
}

func axisQ[T linear.Float](o *options) func([]T) (linear.Q[T], error) {
	return func(v []T) (q linear.Q[T], err error) {
		axis := linear.V3[T]{v[0], v[1], v[2]}
		if axis.Len() == 0 {
			return q, errors.New("zero-length axis")
		}
		axis.Norm(&axis)
		q.Rotate(radians(o, v[3]), &axis)
		return
	}
}

func newMatrixCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix M0 ... M15",
		Short: "Convert the rotation part of a column-major 4x4 matrix",
		Args:  cobra.ExactArgs(16),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args, matrixQ[float32], matrixQ[float64])
		},
	}
}

func matrixQ[T linear.Float](v []T) (q linear.Q[T], err error) {
	var m linear.M4[T]
	for i := range m {
		copy(m[i][:], v[4*i:])
	}
	q.FromM4(&m)
	return
}

func newVectorsCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vectors FX FY FZ TX TY TZ",
		Short: "Compute the rotation from one direction to another",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args, vectorsQ[float32], vectorsQ[float64])
		},
	}
}

func vectorsQ[T linear.Float](v []T) (q linear.Q[T], err error) {
	from := linear.V3[T]{v[0], v[1], v[2]}
	to := linear.V3[T]{v[3], v[4], v[5]}
	if from.Len() == 0 || to.Len() == 0 {
		return q, errors.New("zero-length vector")
	}
	from.Norm(&from)
	to.Norm(&to)
	q.FromUnitVectors(&from, &to)
	return
}

func newSlerpCommand(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "slerp X0 Y0 Z0 W0 X1 Y1 Z1 W1 T",
		Short: "Interpolate between two quaternions",
		Args:  cobra.ExactArgs(9),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args, slerpQ[float32], slerpQ[float64])
		},
	}
}

func slerpQ[T linear.Float](v []T) (q linear.Q[T], err error) {
	var l, r linear.Q[T]
	l.Load(v, 0)
	r.Load(v, 4)
	q.Slerp(&l, &r, v[8])
	return
}

func newNodesCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodes FILE...",
		Short: "Print the node rotations of glTF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im := asset.Importer{Log: o.log, Limit: o.limit}
			roots, err := im.ImportAll(cmd.Context(), args...)
			if err != nil {
				return err
			}
			for _, root := range roots {
				fmt.Fprintln(o.out, root.Name)
				root.ForEach(func(n *node.Node) {
					fmt.Fprint(o.out, n.Name, " ")
					show(o, n.Rotation())
				})
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&o.limit, "limit", 4, "maximum number of concurrent imports")
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	cmd := newRootCommand(os.Stdout)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "quatconv:", err)
		stop()
		os.Exit(1)
	}
}
