// Package model provides the data structures shared by the pipeline package and its consumers.
// It defines the stage type tags, both the mechanism used to evaluate a stage and the
// semantic kind it is reported as, and the StageInfo record used for introspection.
package model
