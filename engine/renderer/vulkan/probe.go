package vulkan

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	vk "github.com/goki/vulkan"
	"github.com/spaghettifunk/facet/engine/core"
)

/**
 * @brief What the probe learned about one Vulkan physical device.
 */
type DeviceInfo struct {
	Name          string
	Type          vk.PhysicalDeviceType
	DriverVersion uint32
	APIVersion    uint32
	/** @brief Device local heaps, in bytes. */
	LocalMemory []uint64
	/** @brief Host visible heaps, in bytes. */
	SharedMemory []uint64
}

// Probe creates a throwaway Vulkan instance and lists the physical devices it
// sees. It runs before the WebGPU adapter is requested and is purely
// informational. glfw must already be initialized.
func Probe(appName string) ([]DeviceInfo, error) {
	if !glfw.VulkanSupported() {
		return nil, fmt.Errorf("vulkan loader not found")
	}
	procAddr := glfw.GetVulkanGetInstanceProcAddress()
	if procAddr == nil {
		return nil, fmt.Errorf("GetInstanceProcAddress is nil")
	}
	vk.SetGetInstanceProcAddr(procAddr)
	if err := vk.Init(); err != nil {
		return nil, err
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         uint32(vk.MakeVersion(1, 0, 0)),
		ApplicationVersion: uint32(vk.MakeVersion(1, 0, 0)),
		PApplicationName:   VulkanSafeString(appName),
		PEngineName:        VulkanSafeString("Facet Engine"),
	}
	createInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}
	if runtime.GOOS == "darwin" {
		extensions := []string{"VK_KHR_portability_enumeration"}
		createInfo.Flags |= 1
		createInfo.EnabledExtensionCount = uint32(len(extensions))
		createInfo.PpEnabledExtensionNames = VulkanSafeStrings(extensions)
	}

	var instance vk.Instance
	if res := vk.CreateInstance(&createInfo, nil, &instance); res != vk.Success {
		return nil, fmt.Errorf("failed to create vulkan instance: %s", VulkanResultString(res))
	}
	defer vk.DestroyInstance(instance, nil)

	var count uint32
	if res := vk.EnumeratePhysicalDevices(instance, &count, nil); res != vk.Success {
		return nil, fmt.Errorf("failed to enumerate physical devices: %s", VulkanResultString(res))
	}
	if count == 0 {
		return nil, nil
	}
	devices := make([]vk.PhysicalDevice, count)
	if res := vk.EnumeratePhysicalDevices(instance, &count, devices); res != vk.Success {
		return nil, fmt.Errorf("failed to enumerate physical devices: %s", VulkanResultString(res))
	}

	infos := make([]DeviceInfo, 0, count)
	for _, device := range devices[:count] {
		properties := vk.PhysicalDeviceProperties{}
		vk.GetPhysicalDeviceProperties(device, &properties)
		properties.Deref()

		memory := vk.PhysicalDeviceMemoryProperties{}
		vk.GetPhysicalDeviceMemoryProperties(device, &memory)
		memory.Deref()

		info := DeviceInfo{
			Name:          CString(properties.DeviceName[:]),
			Type:          properties.DeviceType,
			DriverVersion: properties.DriverVersion,
			APIVersion:    properties.ApiVersion,
		}
		for j := 0; j < int(memory.MemoryHeapCount); j++ {
			heap := memory.MemoryHeaps[j]
			heap.Deref()
			if vk.MemoryHeapFlagBits(heap.Flags)&vk.MemoryHeapDeviceLocalBit > 0 {
				info.LocalMemory = append(info.LocalMemory, uint64(heap.Size))
			} else {
				info.SharedMemory = append(info.SharedMemory, uint64(heap.Size))
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// LogDevices runs Probe and logs every device found. Failures are only warnings.
func LogDevices(appName string) {
	infos, err := Probe(appName)
	if err != nil {
		core.LogWarn("vulkan probe failed: %s", err)
		return
	}
	if len(infos) == 0 {
		core.LogWarn("vulkan probe found no physical devices")
		return
	}
	for _, info := range infos {
		core.LogInfo("Vulkan device: '%s' (%s)", info.Name, DeviceTypeString(info.Type))
		core.LogInfo("GPU Driver version: %s", FormatVersion(info.DriverVersion))
		core.LogInfo("Vulkan API version: %s", FormatVersion(info.APIVersion))
		for _, size := range info.LocalMemory {
			core.LogInfo("Local GPU memory: %.2f GiB", ToGiB(size))
		}
		for _, size := range info.SharedMemory {
			core.LogInfo("Shared System memory: %.2f GiB", ToGiB(size))
		}
	}
}

func DeviceTypeString(t vk.PhysicalDeviceType) string {
	switch t {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "Integrated"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "Discrete"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "Virtual"
	case vk.PhysicalDeviceTypeCpu:
		return "CPU"
	}
	return "Unknown"
}

func FormatVersion(v uint32) string {
	version := vk.Version(v)
	return fmt.Sprintf("%d.%d.%d", version.Major(), version.Minor(), version.Patch())
}

func ToGiB(size uint64) float64 {
	return float64(size) / 1024.0 / 1024.0 / 1024.0
}
