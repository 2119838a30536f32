package ecs

import (
	"reflect"
	"sort"
)

// 泛型组件访问辅助函数
//
// 相比反射版本（AddComponentByType / HasComponent），泛型版本在调用点
// 即可确定组件类型，免去手写 reflect.TypeOf 的样板代码。

// AddComponent 为实体添加组件（泛型版本）
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// GetComponent 获取实体的特定类型组件
// 返回组件实例和是否存在标记
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeOf(zero)]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体
// 结果按 EntityID 升序排列，保证遍历顺序稳定（绘制顺序依赖于此）
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	var t1 T1
	return em.entitiesWithTypes(reflect.TypeOf(t1))
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	return em.entitiesWithTypes(reflect.TypeOf(t1), reflect.TypeOf(t2))
}

// GetEntitiesWith3 查询同时拥有三种组件类型的所有实体
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	var t1 T1
	var t2 T2
	var t3 T3
	return em.entitiesWithTypes(reflect.TypeOf(t1), reflect.TypeOf(t2), reflect.TypeOf(t3))
}

func (em *EntityManager) entitiesWithTypes(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
