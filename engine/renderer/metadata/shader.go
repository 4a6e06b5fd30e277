package metadata

/**
 * @brief Fixed-function state and shader source for a render pipeline.
 */
type PipelineConfig struct {
	/** @brief Label used for the pipeline and its shader module. */
	Name string
	/** @brief WGSL source with vs_main and fs_main entry points. */
	Shader string
	/** @brief Face culling mode. */
	Cull FaceCullMode
	/** @brief Compare against the depth attachment (Less) instead of always passing. */
	DepthTest bool
	/** @brief Write fragment depth to the depth attachment. */
	DepthWrite bool
	/** @brief Color target blending. */
	Blend BlendMode
}

const (
	/** @brief Vertex stage entry point every shader provides. */
	ShaderVertexEntryPoint string = "vs_main"
	/** @brief Fragment stage entry point every shader provides. */
	ShaderFragmentEntryPoint string = "fs_main"
)
