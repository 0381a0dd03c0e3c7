package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shouni/dream-image-kit/pkg/utils"
)

// seedFlag は --seed が指定されていればその値を、無ければ nil を返します。
// NaN や ±Inf はエラーです。
func seedFlag(cmd *cobra.Command, value float64) (*float64, error) {
	if !cmd.Flags().Changed("seed") {
		return nil, nil
	}
	if !utils.IsFiniteSeed(value) {
		return nil, fmt.Errorf("--seed must be a finite number, got %v", value)
	}
	return &value, nil
}
